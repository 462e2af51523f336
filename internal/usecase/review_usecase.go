package usecase

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to leave a review.
type CreateReviewInput struct {
	VenueID uuid.UUID
	UserID  uuid.UUID
	Rating  int
	Title   string
	Comment string
}

// RespondToReviewInput carries the venue owner's reply.
type RespondToReviewInput struct {
	ReviewID uuid.UUID
	ActorID  uuid.UUID
	Response string
}

// ReviewUsecase defines review creation and owner responses. Creating or
// deleting a review refreshes the venue's denormalised rating stats.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, input *CreateReviewInput) (*entity.Review, error)
	ListVenueReviews(ctx context.Context, venueID uuid.UUID) ([]*entity.Review, error)
	RespondToReview(ctx context.Context, input *RespondToReviewInput) error
	DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorIsAdmin bool) error
}
