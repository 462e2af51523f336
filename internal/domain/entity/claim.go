package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus represents the state of an ownership claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Claim is a venue owner's assertion of ownership over an unclaimed listing.
// Approval assigns the claimant as the venue's owner.
type Claim struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	UserID    uuid.UUID
	Message   string // Supporting evidence supplied by the claimant.
	Status    ClaimStatus
	CreatedAt time.Time
	DecidedAt *time.Time // Set when an admin approves or rejects.
}
