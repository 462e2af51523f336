package usecase

import (
	"context"
	"io"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitVenueInput defines the data required to submit a new listing.
// Submissions always enter moderation in the pending state.
type SubmitVenueInput struct {
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Suburb       string
	City         string
	State        string
	Postcode     string
	Latitude     *float64
	Longitude    *float64
	Categories   []string
	AgeMin       int
	AgeMax       int
	Indoor       bool
	PriceRange   int
	Facilities   []string
	OpeningHours entity.OpeningHours
}

// UpdateVenueInput carries owner edits to an existing listing.
type UpdateVenueInput struct {
	VenueID      uuid.UUID
	ActorID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Suburb       string
	City         string
	State        string
	Postcode     string
	Latitude     *float64
	Longitude    *float64
	Categories   []string
	AgeMin       int
	AgeMax       int
	Indoor       bool
	PriceRange   int
	Facilities   []string
	OpeningHours entity.OpeningHours
}

// ModerationStats summarises listing counts per moderation state for the
// admin dashboard.
type ModerationStats struct {
	Pending   int64
	Published int64
	Rejected  int64
}

// PhotoUpload is one photo binary in a submission.
type PhotoUpload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

// VenueUsecase defines listing submission, moderation and management.
type VenueUsecase interface {
	// SubmitVenue creates a pending listing owned by the submitting user.
	SubmitVenue(ctx context.Context, input *SubmitVenueInput) (*entity.Venue, error)

	// UpdateVenue applies owner edits. Only the listing's owner may edit, and
	// the edited listing drops back to pending until re-approved.
	UpdateVenue(ctx context.Context, input *UpdateVenueInput) (*entity.Venue, error)

	// GetVenueBySlug returns a published venue with associations. Pending and
	// rejected listings are only visible to their owner or an admin.
	GetVenueBySlug(ctx context.Context, slug string, viewer *entity.User) (*entity.Venue, error)

	// ListMyVenues returns every listing managed by the user.
	ListMyVenues(ctx context.Context, ownerID uuid.UUID) ([]*entity.Venue, error)

	// ListPendingVenues returns the moderation queue, oldest first.
	ListPendingVenues(ctx context.Context) ([]*entity.Venue, error)

	// ModerationStats counts listings per moderation state.
	ModerationStats(ctx context.Context) (*ModerationStats, error)

	// ApproveVenue publishes a pending listing and emits a moderation event.
	ApproveVenue(ctx context.Context, venueID uuid.UUID) error

	// RejectVenue declines a pending listing and emits a moderation event.
	RejectVenue(ctx context.Context, venueID uuid.UUID) error

	// UploadPhotos stores photo binaries and appends them to the gallery.
	UploadPhotos(ctx context.Context, venueID, actorID uuid.UUID, uploads []PhotoUpload) ([]*entity.Photo, error)

	// ReorderPhotos rewrites the gallery order.
	ReorderPhotos(ctx context.Context, venueID, actorID uuid.UUID, orderedIDs []uuid.UUID) error

	// DeletePhoto removes a photo row and its blob.
	DeletePhoto(ctx context.Context, photoID, actorID uuid.UUID) error

	// VenuePoster renders a printable QR code for the venue page.
	VenuePoster(ctx context.Context, slug string) ([]byte, error)
}
