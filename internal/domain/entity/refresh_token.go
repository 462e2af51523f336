package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a persisted session credential. Only the hash is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
