package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOfferNotFound is returned when no offer matches the lookup.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository persists promotional offers. Offers have no approval step.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.Offer) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// ListByVenue returns offers newest first.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Offer, error)

	Update(ctx context.Context, offer *entity.Offer) error

	Delete(ctx context.Context, id uuid.UUID) error
}
