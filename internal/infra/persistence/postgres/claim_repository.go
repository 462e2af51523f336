package postgres

import (
	"context"
	"time"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// claimRepository implements the domain.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

// Create persists a new ownership claim.
func (repo *claimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	claimM := fromClaimDomain(claim)

	if err := repo.db.WithContext(ctx).Create(claimM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVenueNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create claim")
	}

	claim.ID = claimM.ID
	claim.CreatedAt = claimM.CreatedAt

	return nil
}

// FindByID retrieves a claim by its unique ID.
func (repo *claimRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error) {
	var claimM model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&claimM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClaimNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toClaimDomain(&claimM), nil
}

// Decide records the admin decision and its timestamp. Only pending claims
// can be decided, so a second decision affects no rows.
func (repo *claimRepository) Decide(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ClaimModel{}).
		Where("id = ? AND status = ?", id, entity.ClaimStatusPending).
		Updates(map[string]any{
			"status":     string(status),
			"decided_at": now,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrClaimNotFound
	}

	return nil
}

// ListPending returns undecided claims oldest first.
func (repo *claimRepository) ListPending(ctx context.Context) ([]*entity.Claim, error) {
	var claimModels []*model.ClaimModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.ClaimStatusPending).
		Order("created_at ASC").
		Find(&claimModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	claims := make([]*entity.Claim, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

// --- Mapper Functions ---

func toClaimDomain(data *model.ClaimModel) *entity.Claim {
	if data == nil {
		return nil
	}

	return &entity.Claim{
		ID:        data.ID,
		VenueID:   data.VenueID,
		UserID:    data.UserID,
		Message:   data.Message,
		Status:    entity.ClaimStatus(data.Status),
		CreatedAt: data.CreatedAt,
		DecidedAt: data.DecidedAt,
	}
}

func fromClaimDomain(data *entity.Claim) *model.ClaimModel {
	if data == nil {
		return nil
	}

	return &model.ClaimModel{
		ID:        data.ID,
		VenueID:   data.VenueID,
		UserID:    data.UserID,
		Message:   data.Message,
		Status:    string(data.Status),
		CreatedAt: data.CreatedAt,
		DecidedAt: data.DecidedAt,
	}
}
