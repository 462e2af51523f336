package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrFavoriteNotFound is returned when the (user, venue) row is absent.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the unique (user_id, venue_id)
	// constraint rejects a concurrent double-toggle.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository persists the user/venue favourite join rows.
type FavoriteRepository interface {
	Find(ctx context.Context, userID, venueID uuid.UUID) (*entity.Favorite, error)

	Create(ctx context.Context, favorite *entity.Favorite) error

	Delete(ctx context.Context, userID, venueID uuid.UUID) error

	// ListVenuesByUser returns the favourited venues newest-favourite first.
	ListVenuesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error)
}
