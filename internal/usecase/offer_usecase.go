package usecase

import (
	"context"
	"time"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOfferInput defines the data required to attach an offer to a venue.
type CreateOfferInput struct {
	VenueID      uuid.UUID
	ActorID      uuid.UUID
	Title        string
	Description  string
	Terms        string
	DiscountText string
	StartsAt     time.Time
	ExpiresAt    time.Time
}

// UpdateOfferInput carries owner edits to an existing offer.
type UpdateOfferInput struct {
	OfferID      uuid.UUID
	ActorID      uuid.UUID
	Title        string
	Description  string
	Terms        string
	DiscountText string
	StartsAt     time.Time
	ExpiresAt    time.Time
	IsActive     bool
}

// OfferUsecase defines offer management. Offers have no approval step; only
// the venue owner may manage them.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, input *CreateOfferInput) (*entity.Offer, error)
	UpdateOffer(ctx context.Context, input *UpdateOfferInput) (*entity.Offer, error)
	DeleteOffer(ctx context.Context, offerID, actorID uuid.UUID) error
	ListVenueOffers(ctx context.Context, venueID uuid.UUID) ([]*entity.Offer, error)
}
