// Package repository defines the persistence interfaces consumed by the
// use case layer. Concrete implementations live under internal/infra.
package repository

import (
	"context"
	"time"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrVenueNotFound is returned when no venue matches the lookup.
var ErrVenueNotFound = errors.New("venue not found")

// VenueQuery carries the server-side filter parameters for a venue listing
// query. Nil/zero fields are not applied.
type VenueQuery struct {
	Category   string // Category slug the venue must be listed under.
	City       string // Exact city match.
	State      string // Exact state code match.
	AgeMin     *int   // Venue age_min must be >= this.
	AgeMax     *int   // Venue age_max must be <= this.
	Indoor     *bool  // Indoor equality; nil means both.
	PriceRange *int   // Exact price tier.
	Text       string // Case-insensitive substring over name and description.
}

// SlugEntry is a published venue reference for the sitemap job.
type SlugEntry struct {
	Slug      string
	UpdatedAt time.Time
}

// VenueRepository persists and queries venue listings.
type VenueRepository interface {
	// ListPublished returns published venues matching the query, with offers
	// preloaded, ordered promoted-first then by average rating descending.
	ListPublished(ctx context.Context, query VenueQuery) ([]*entity.Venue, error)

	// ListNearby returns published venues within radiusKm of center, carrying
	// the same query filters and ordering. Venues without coordinates are
	// never returned.
	ListNearby(ctx context.Context, center orb.Point, radiusKm float64, query VenueQuery) ([]*entity.Venue, error)

	// FindBySlug returns a venue with categories, offers, reviews and photos
	// joined, regardless of status.
	FindBySlug(ctx context.Context, slug string) (*entity.Venue, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)

	Create(ctx context.Context, venue *entity.Venue) error

	Update(ctx context.Context, venue *entity.Venue) error

	// UpdateStatus transitions the moderation state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VenueStatus) error

	// AssignOwner sets the owning user on an unclaimed listing.
	AssignOwner(ctx context.Context, venueID, ownerID uuid.UUID) error

	ListByStatus(ctx context.Context, status entity.VenueStatus) ([]*entity.Venue, error)

	// CountByStatus returns how many venues sit in a moderation state.
	CountByStatus(ctx context.Context, status entity.VenueStatus) (int64, error)

	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Venue, error)

	// AddFavoriteCount adjusts the denormalised favourite counter by delta.
	AddFavoriteCount(ctx context.Context, id uuid.UUID, delta int) error

	// RefreshRatingStats recomputes average_rating and review_count from the
	// venue's reviews.
	RefreshRatingStats(ctx context.Context, id uuid.UUID) error

	// ListPublishedSlugs returns slug and last-modified pairs for every
	// published venue, for the sitemap job.
	ListPublishedSlugs(ctx context.Context) ([]SlugEntry, error)
}
