package service

import (
	"context"

	"courses_api/internal/models"
)

// mockUsersRepo is a lightweight in-test mock for repository.Users.
type mockUsersRepo struct {
	FindByEmailFn func(ctx context.Context, email string) (*models.User, error)
	FindByIDFn    func(ctx context.Context, id int64) (*models.User, error)
	CreateFn      func(ctx context.Context, u models.User) (int64, error)

	created []models.User
}

func (m *mockUsersRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.FindByEmailFn(ctx, email)
}

func (m *mockUsersRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockUsersRepo) Create(ctx context.Context, u models.User) (int64, error) {
	m.created = append(m.created, u)
	return m.CreateFn(ctx, u)
}

// mockCoursesRepo is a lightweight in-test mock for repository.Courses.
type mockCoursesRepo struct {
	FindAllFn  func(ctx context.Context) ([]models.Course, error)
	FindByIDFn func(ctx context.Context, id int64) (*models.Course, error)
	CreateFn   func(ctx context.Context, c models.Course) (int64, error)
	UpdateFn   func(ctx context.Context, c models.Course) error
	DeleteFn   func(ctx context.Context, id int64) error

	created []models.Course
	updated []models.Course
	deleted []int64
}

func (m *mockCoursesRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	return m.FindAllFn(ctx)
}

func (m *mockCoursesRepo) FindByID(ctx context.Context, id int64) (*models.Course, error) {
	return m.FindByIDFn(ctx, id)
}

func (m *mockCoursesRepo) Create(ctx context.Context, c models.Course) (int64, error) {
	m.created = append(m.created, c)
	return m.CreateFn(ctx, c)
}

func (m *mockCoursesRepo) Update(ctx context.Context, c models.Course) error {
	m.updated = append(m.updated, c)
	return m.UpdateFn(ctx, c)
}

func (m *mockCoursesRepo) Delete(ctx context.Context, id int64) error {
	m.deleted = append(m.deleted, id)
	return m.DeleteFn(ctx, id)
}

func strPtr(s string) *string { return &s }
