package usecase

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the save-venue toggle and the saved list.
type FavoriteUsecase interface {
	// ToggleFavorite saves the venue if not saved, removes it otherwise.
	// Returns true when the venue ended up saved.
	ToggleFavorite(ctx context.Context, userID, venueID uuid.UUID) (saved bool, err error)

	// ListFavorites returns the user's saved venues, newest-saved first.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error)
}
