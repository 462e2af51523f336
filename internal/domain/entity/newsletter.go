package entity

import (
	"time"

	"github.com/google/uuid"
)

// NewsletterSubscription records an email opted in to the directory newsletter.
type NewsletterSubscription struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}
