package service

import (
	"context"

	"courses_api/internal/models"
	"courses_api/internal/repository"
	"courses_api/internal/validation"
)

type CourseService struct {
	courses   repository.Courses
	validator *validation.Validator
}

func NewCourseService(courses repository.Courses, v *validation.Validator) *CourseService {
	return &CourseService{courses: courses, validator: v}
}

func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	out, err := s.courses.FindAll(ctx)
	if err != nil {
		return nil, fromRepo(err)
	}
	return out, nil
}

func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	c, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	return c, nil
}

// Create stores a course owned by owner.
func (s *CourseService) Create(ctx context.Context, owner *models.User, in models.CourseInput) (int64, error) {
	if owner == nil {
		return 0, ErrUnauthenticated
	}
	if err := s.validate(in); err != nil {
		return 0, err
	}

	id, err := s.courses.Create(ctx, models.Course{
		Title:           in.Title,
		Description:     in.Description,
		EstimatedTime:   in.EstimatedTime,
		MaterialsNeeded: in.MaterialsNeeded,
		UserID:          owner.ID,
	})
	if err != nil {
		return 0, fromRepo(err)
	}
	return id, nil
}

// Update resolves existence and ownership before looking at the payload,
// so a stranger gets 403 even for an invalid body.
func (s *CourseService) Update(ctx context.Context, requester *models.User, id int64, in models.CourseInput) error {
	current, err := s.owned(ctx, requester, id)
	if err != nil {
		return err
	}
	if err := s.validate(in); err != nil {
		return err
	}

	current.Title = in.Title
	current.Description = in.Description
	// optional fields absent from the body keep their stored value
	if in.EstimatedTime != nil {
		current.EstimatedTime = in.EstimatedTime
	}
	if in.MaterialsNeeded != nil {
		current.MaterialsNeeded = in.MaterialsNeeded
	}
	return fromRepo(s.courses.Update(ctx, *current))
}

func (s *CourseService) Delete(ctx context.Context, requester *models.User, id int64) error {
	if _, err := s.owned(ctx, requester, id); err != nil {
		return err
	}
	return fromRepo(s.courses.Delete(ctx, id))
}

// Authorize reports whether requester may modify course id: ErrNotFound,
// ErrForbidden or nil.
func (s *CourseService) Authorize(ctx context.Context, requester *models.User, id int64) error {
	_, err := s.owned(ctx, requester, id)
	return err
}

// owned loads course id and checks requester owns it.
func (s *CourseService) owned(ctx context.Context, requester *models.User, id int64) (*models.Course, error) {
	if requester == nil {
		return nil, ErrUnauthenticated
	}
	c, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	if c.UserID != requester.ID {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *CourseService) validate(in models.CourseInput) error {
	msgs, err := s.validator.Struct(in)
	if err != nil {
		return unclassified(err)
	}
	if len(msgs) > 0 {
		return validationError(msgs...)
	}
	return nil
}
