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

// photoRepository implements the domain.PhotoRepository interface.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

// Create persists a new photo row.
func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVenueNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

// FindByID retrieves a photo by its unique ID.
func (repo *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photoM model.PhotoModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&photoM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPhotoDomain(&photoM), nil
}

// ListByVenue returns photos in gallery order.
func (repo *photoRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Photo, error) {
	var photoModels []*model.PhotoModel
	if err := repo.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("position ASC").
		Find(&photoModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	photos := make([]*entity.Photo, 0, len(photoModels))
	for _, photoM := range photoModels {
		photos = append(photos, toPhotoDomain(photoM))
	}

	return photos, nil
}

// SaveOrdering rewrites the gallery positions to match orderedIDs.
func (repo *photoRepository) SaveOrdering(ctx context.Context, venueID uuid.UUID, orderedIDs []uuid.UUID) error {
	for position, id := range orderedIDs {
		result := repo.db.WithContext(ctx).
			Model(&model.PhotoModel{}).
			Where("id = ? AND venue_id = ?", id, venueID).
			Update("position", position)
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}
		if result.RowsAffected == 0 {
			return repository.ErrPhotoNotFound
		}
	}

	return nil
}

// Delete removes a photo row.
func (repo *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhotoModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPhotoDomain(data *model.PhotoModel) *entity.Photo {
	if data == nil {
		return nil
	}

	return &entity.Photo{
		ID:         data.ID,
		VenueID:    data.VenueID,
		StorageKey: data.StorageKey,
		URL:        data.URL,
		Position:   data.Position,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPhotoDomain(data *entity.Photo) *model.PhotoModel {
	if data == nil {
		return nil
	}

	return &model.PhotoModel{
		ID:         data.ID,
		VenueID:    data.VenueID,
		StorageKey: data.StorageKey,
		URL:        data.URL,
		Position:   data.Position,
		CreatedAt:  data.CreatedAt,
	}
}
