package postgres

import (
	"context"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Find retrieves the (user, venue) favourite row.
func (repo *favoriteRepository) Find(ctx context.Context, userID, venueID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toFavoriteDomain(&favoriteM), nil
}

// Create inserts the favourite row. The composite primary key turns a
// concurrent double-toggle into ErrDuplicateFavorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVenueNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the favourite row.
func (repo *favoriteRepository) Delete(ctx context.Context, userID, venueID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// ListVenuesByUser returns the favourited venues newest-favourite first.
func (repo *favoriteRepository) ListVenuesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error) {
	var venueModels []*model.VenueModel
	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Preload("Offers").
		Joins("JOIN favorites ON favorites.venue_id = venues.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&venueModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toVenueDomainList(venueModels)
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		UserID:    data.UserID,
		VenueID:   data.VenueID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		UserID:    data.UserID,
		VenueID:   data.VenueID,
		CreatedAt: data.CreatedAt,
	}
}
