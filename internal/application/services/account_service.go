package services

import (
	"context"
	"fmt"

	"github.com/shopstack/core/internal/domain/entities"
	"github.com/shopstack/core/internal/infrastructure/logger"
	"github.com/shopstack/core/internal/ports"
)

// AccountService handles registration and login
type AccountService struct {
	users  ports.UserRepository
	logger *logger.Logger
}

// NewAccountService creates a new account service
func NewAccountService(users ports.UserRepository, logger *logger.Logger) *AccountService {
	return &AccountService{
		users:  users,
		logger: logger,
	}
}

// Register appends a new user after a case-sensitive username uniqueness
// check. The check and the write are not coordinated across requests, so
// two concurrent registrations with the same username can both pass it.
func (s *AccountService) Register(ctx context.Context, username, email, password string) error {
	users := s.users.List(ctx)

	for _, user := range users {
		if user.Username == username {
			return entities.ErrUserExists
		}
	}

	users = append(users, entities.User{
		Username: username,
		Email:    email,
		Password: password,
	})

	if err := s.users.Save(ctx, users); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User registered", "username", username)

	return nil
}

// Login succeeds only for an exact username and password pair. Every
// mismatch returns the same error so callers cannot tell an unknown user
// from a wrong password.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	for _, user := range s.users.List(ctx) {
		if user.Username == username && user.Password == password {
			s.logger.Info("User logged in", "username", username)
			return nil
		}
	}

	return entities.ErrInvalidCredentials
}
