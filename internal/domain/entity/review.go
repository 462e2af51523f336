package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating with commentary left by a user on a venue.
// One review per (user, venue) pair, enforced by a unique constraint.
type Review struct {
	ID            uuid.UUID
	VenueID       uuid.UUID
	UserID        uuid.UUID
	Rating        int    // 1 to 5.
	Title         string // Optional headline.
	Comment       string
	OwnerResponse string // Optional reply from the venue owner.
	CreatedAt     time.Time
}
