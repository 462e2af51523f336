package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReviewNotFound is returned when no review matches the lookup.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the (user, venue) pair already has
	// a review; the unique constraint enforces one review per pair.
	ErrDuplicateReview = errors.New("review already exists for this user and venue")
)

// ReviewRepository persists venue reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByVenue returns reviews newest first.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Review, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// SetOwnerResponse stores the venue owner's reply on a review.
	SetOwnerResponse(ctx context.Context, id uuid.UUID, response string) error
}
