package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is the join row recording that a user saved a venue.
// It is toggled: created if absent, deleted if present, never updated.
type Favorite struct {
	UserID    uuid.UUID
	VenueID   uuid.UUID
	CreatedAt time.Time
}
