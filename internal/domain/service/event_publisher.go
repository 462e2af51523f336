package service

import (
	"context"
	"time"
)

// ModerationEvent describes an admin decision on a venue listing, published
// for downstream tooling (owner notification emails, audit trails).
type ModerationEvent struct {
	VenueID   string    `json:"venue_id"`
	VenueSlug string    `json:"venue_slug"`
	Decision  string    `json:"decision"` // "published" or "rejected"
	DecidedAt time.Time `json:"decided_at"`
}

// EventPublisher publishes moderation events to a message bus.
type EventPublisher interface {
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error
	Close() error
}
