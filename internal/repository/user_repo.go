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

type UserRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewUserRepository(conn *sql.DB, dialect db.Dialect) *UserRepository {
	return &UserRepository{db: conn, sb: statementBuilder(dialect)}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

var userColumns = []string{"id", "first_name", "last_name", "email_address", "password"}

// FindByEmail fetches a user by exact email address.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email_address": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user query: %w", err)
	}
	return r.scanOne(r.db.QueryRowContext(ctx, query, args...), "email "+email)
}

// FindByID fetches a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query, args, err := r.sb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user query: %w", err)
	}
	return r.scanOne(r.db.QueryRowContext(ctx, query, args...), fmt.Sprintf("id %d", id))
}

func (r *UserRepository) scanOne(row *sql.Row, key string) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.EmailAddress, &u.Password); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user by %s: %w", key, err)
	}
	return &u, nil
}

// Create inserts a new user and returns its ID. u.Password must already be hashed.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int64, error) {
	now := time.Now().UTC()
	query, args, err := r.sb.Insert("users").
		Columns("first_name", "last_name", "email_address", "password", "created_at", "updated_at").
		Values(u.FirstName, u.LastName, u.EmailAddress, u.Password, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert user query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if cerr := asConstraintError(err); cerr != nil {
			return 0, cerr
		}
		return 0, fmt.Errorf("insert user %q: %w", u.EmailAddress, err)
	}
	return id, nil
}
