package service

import (
	"context"
	"errors"

	"courses_api/internal/models"
	"courses_api/internal/repository"
	"courses_api/internal/validation"
)

// Authorization verifies Basic-Auth credentials on every request.
type Authorization interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// Users exposes account creation and lookup.
type Users interface {
	SignUp(ctx context.Context, in models.NewUserInput) (int64, error)
	Current(ctx context.Context, email string) (*models.User, error)
}

// Courses exposes course reads and owner-only mutations.
type Courses interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, owner *models.User, in models.CourseInput) (int64, error)
	Update(ctx context.Context, requester *models.User, id int64, in models.CourseInput) error
	Authorize(ctx context.Context, requester *models.User, id int64) error
	Delete(ctx context.Context, requester *models.User, id int64) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Users
	Courses
}

func NewService(repos *repository.Repository, v *validation.Validator) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users),
		Users:         NewUserService(repos.Users, v),
		Courses:       NewCourseService(repos.Courses, v),
	}
}

// fromRepo converts repository failures into tagged errors.
func fromRepo(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	var cerr *repository.ConstraintError
	if errors.As(err, &cerr) {
		return constraintError(err, cerr.Messages...)
	}
	return unclassified(err)
}
