// Package service defines domain service interfaces whose concrete
// implementations live under internal/infra.
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the validated content of an access or refresh token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// TokenService issues and validates session tokens.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for a user.
	GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// HashToken produces the storable digest of a refresh token.
	HashToken(tokenString string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
