package repository

import (
	"context"
	"database/sql"

	"courses_api/internal/models"
	"courses_api/internal/repository/db"

	sq "github.com/Masterminds/squirrel"
)

// Users persists accounts. FindBy* return the stored password hash so the
// credential verifier can compare it; handlers never serialize it.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, u models.User) (int64, error)
}

// Courses persists courses. Reads always embed the owner projection.
type Courses interface {
	FindAll(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, c models.Course) (int64, error)
	Update(ctx context.Context, c models.Course) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	Users   Users
	Courses Courses
}

func NewRepository(conn *sql.DB, dialect db.Dialect) *Repository {
	return &Repository{
		Users:   NewUserRepository(conn, dialect),
		Courses: NewCourseRepository(conn, dialect),
	}
}

// statementBuilder picks the placeholder format of the dialect.
func statementBuilder(dialect db.Dialect) sq.StatementBuilderType {
	if dialect == db.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}
