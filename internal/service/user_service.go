package service

import (
	"context"
	"errors"

	"courses_api/internal/models"
	"courses_api/internal/repository"
	"courses_api/internal/validation"
)

type UserService struct {
	users     repository.Users
	validator *validation.Validator
}

func NewUserService(users repository.Users, v *validation.Validator) *UserService {
	return &UserService{users: users, validator: v}
}

// SignUp validates in, hashes the password and stores the user.
// Nothing is hashed or written when validation fails.
func (s *UserService) SignUp(ctx context.Context, in models.NewUserInput) (int64, error) {
	if !validation.ValidEmail(in.EmailAddress) {
		return 0, validationError(validation.MsgInvalidEmail)
	}

	msgs, err := s.validator.Struct(in)
	if err != nil {
		return 0, unclassified(err)
	}
	if len(msgs) > 0 {
		return 0, validationError(msgs...)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, unclassified(err)
	}

	id, err := s.users.Create(ctx, models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		EmailAddress: in.EmailAddress,
		Password:     hash,
	})
	if err != nil {
		return 0, fromRepo(err)
	}
	return id, nil
}

// Current re-reads the authenticated user by email for GET /api/users.
func (s *UserService) Current(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// deleted between authentication and lookup
			return nil, ErrUnauthenticated
		}
		return nil, unclassified(err)
	}
	return u, nil
}
