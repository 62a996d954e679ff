package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lmarques/auth-server/internal/logger"
	"github.com/lmarques/auth-server/internal/model"
)

// User provides read-only user lookups for the API layer.
type User struct {
	users  model.UserStore
	logger *logger.Logger
}

func NewUser(users model.UserStore, logger *logger.Logger) *User {
	return &User{users: users, logger: logger}
}

func (s *User) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	s.logger.Debug("User service: user found",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

func (s *User) GetByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	s.logger.Debug("User service: user found",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}
