package entity

import (
	"time"

	"github.com/google/uuid"
)

// Photo is an image attached to a venue listing. The binary lives in blob
// storage under StorageKey; Position orders the gallery.
type Photo struct {
	ID         uuid.UUID
	VenueID    uuid.UUID
	StorageKey string
	URL        string
	Position   int
	CreatedAt  time.Time
}
