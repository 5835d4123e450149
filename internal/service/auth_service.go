package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courses_api/internal/models"
	"courses_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService is the credential verifier: no session or token is issued,
// every protected request re-authenticates.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns the stored user (hash included) when email and
// password match, ErrUnauthenticated otherwise.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, ErrUnauthenticated
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, unclassified(err)
	}

	if err := verifyPassword(u.Password, password); err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (constant time inside bcrypt)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
