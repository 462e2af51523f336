package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPhotoNotFound is returned when no photo matches the lookup.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository persists venue photo rows. Binary data lives in blob
// storage; only keys and ordering are stored here.
type PhotoRepository interface {
	Create(ctx context.Context, photo *entity.Photo) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)

	// ListByVenue returns photos in gallery order.
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Photo, error)

	// SaveOrdering rewrites the gallery positions to match orderedIDs.
	SaveOrdering(ctx context.Context, venueID uuid.UUID, orderedIDs []uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
}
