package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the unique email constraint rejects a
	// registration.
	ErrEmailTaken = errors.New("email already registered")
)

// Credentials pairs a user id with its stored password hash for login checks.
type Credentials struct {
	UserID       uuid.UUID
	PasswordHash string
}

// UserRepository persists accounts, credentials and profiles.
type UserRepository interface {
	// Create inserts the user, its credentials and profile rows together.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindCredentialsByEmail returns the stored hash for a login attempt.
	FindCredentialsByEmail(ctx context.Context, email string) (*Credentials, error)

	UpdateProfile(ctx context.Context, profile *entity.Profile) error
}
