package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no live token matches the hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists session refresh tokens by hash.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash returns the token only while it has not expired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	DeleteByHash(ctx context.Context, tokenHash string) error

	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
