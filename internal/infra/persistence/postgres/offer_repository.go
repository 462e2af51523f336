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

// offerRepository implements the domain.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{db: db}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVenueNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt

	return nil
}

// FindByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toOfferDomain(&offerM), nil
}

// ListByVenue returns offers newest first.
func (repo *offerRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel
	if err := repo.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// Update rewrites the offer row.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Save(offerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update offer")
	}

	return nil
}

// Delete removes an offer.
func (repo *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrOfferNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:           data.ID,
		VenueID:      data.VenueID,
		Title:        data.Title,
		Description:  data.Description,
		Terms:        data.Terms,
		DiscountText: data.DiscountText,
		StartsAt:     data.StartsAt,
		ExpiresAt:    data.ExpiresAt,
		IsActive:     data.IsActive,
		IsPromoted:   data.IsPromoted,
		CreatedAt:    data.CreatedAt,
	}
}

func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:           data.ID,
		VenueID:      data.VenueID,
		Title:        data.Title,
		Description:  data.Description,
		Terms:        data.Terms,
		DiscountText: data.DiscountText,
		StartsAt:     data.StartsAt,
		ExpiresAt:    data.ExpiresAt,
		IsActive:     data.IsActive,
		IsPromoted:   data.IsPromoted,
		CreatedAt:    data.CreatedAt,
	}
}
