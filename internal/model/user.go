package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users. Email uniqueness is
// enforced by the store: Create returns ErrDuplicateEmail when the email is
// already taken, regardless of any pre-check done by the caller.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user. Password holds the bcrypt hash, never the
// plaintext. Email is immutable after creation and is the natural login key.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
