package entity

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a time-bounded promotional discount attached to a venue.
// Offers are created and removed by the venue owner with no approval step.
type Offer struct {
	ID           uuid.UUID
	VenueID      uuid.UUID
	Title        string
	Description  string
	Terms        string
	DiscountText string    // Display text, e.g. "20% off first session".
	StartsAt     time.Time
	ExpiresAt    time.Time
	IsActive     bool
	IsPromoted   bool
	CreatedAt    time.Time
}

// EffectivelyActive reports whether the offer should be shown: the owner has
// it switched on and it has not yet expired.
func (o *Offer) EffectivelyActive(now time.Time) bool {
	return o.IsActive && now.Before(o.ExpiresAt)
}
