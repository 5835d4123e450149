package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"courses_api/internal/models"
	"courses_api/internal/repository/db"

	sq "github.com/Masterminds/squirrel"
)

type CourseRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewCourseRepository(conn *sql.DB, dialect db.Dialect) *CourseRepository {
	return &CourseRepository{db: conn, sb: statementBuilder(dialect)}
}

var _ Courses = (*CourseRepository)(nil)

// Owner columns are listed explicitly: password and timestamps are never selected.
var courseWithOwnerColumns = []string{
	"c.id", "c.title", "c.description", "c.estimated_time", "c.materials_needed", "c.user_id",
	"u.id", "u.first_name", "u.last_name", "u.email_address",
}

func (r *CourseRepository) selectWithOwner() sq.SelectBuilder {
	return r.sb.Select(courseWithOwnerColumns...).
		From("courses c").
		Join("users u ON u.id = c.user_id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourse(s rowScanner) (models.Course, error) {
	var (
		c         models.Course
		owner     models.User
		estimated sql.NullString
		materials sql.NullString
	)
	if err := s.Scan(
		&c.ID, &c.Title, &c.Description, &estimated, &materials, &c.UserID,
		&owner.ID, &owner.FirstName, &owner.LastName, &owner.EmailAddress,
	); err != nil {
		return models.Course{}, err
	}
	if estimated.Valid {
		c.EstimatedTime = &estimated.String
	}
	if materials.Valid {
		c.MaterialsNeeded = &materials.String
	}
	projection := owner.Owner()
	c.User = &projection
	return c, nil
}

// FindAll returns every course with its owner, ordered by id.
func (r *CourseRepository) FindAll(ctx context.Context) ([]models.Course, error) {
	query, args, err := r.selectWithOwner().OrderBy("c.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select courses query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	defer rows.Close()

	out := make([]models.Course, 0, 16)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return out, nil
}

// FindByID returns one course with its owner or ErrNotFound.
func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.selectWithOwner().Where(sq.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select course query: %w", err)
	}

	c, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select course %d: %w", id, err)
	}
	return &c, nil
}

// Create inserts a course owned by c.UserID and returns its ID.
func (r *CourseRepository) Create(ctx context.Context, c models.Course) (int64, error) {
	now := time.Now().UTC()
	query, args, err := r.sb.Insert("courses").
		Columns("title", "description", "estimated_time", "materials_needed", "user_id", "created_at", "updated_at").
		Values(c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.UserID, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if cerr := asConstraintError(err); cerr != nil {
			return 0, cerr
		}
		return 0, fmt.Errorf("insert course %q: %w", c.Title, err)
	}
	return id, nil
}

// Update rewrites the editable fields of course c.ID. Owner and id are immutable.
func (r *CourseRepository) Update(ctx context.Context, c models.Course) error {
	query, args, err := r.sb.Update("courses").
		Set("title", c.Title).
		Set("description", c.Description).
		Set("estimated_time", c.EstimatedTime).
		Set("materials_needed", c.MaterialsNeeded).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update course query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if cerr := asConstraintError(err); cerr != nil {
			return cerr
		}
		return fmt.Errorf("update course %d: %w", c.ID, err)
	}
	return requireAffected(res, "update course", c.ID)
}

// Delete removes course id or returns ErrNotFound.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("courses").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete course query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete course %d: %w", id, err)
	}
	return requireAffected(res, "delete course", id)
}

func requireAffected(res sql.Result, op string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s %d rows affected: %w", op, id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
