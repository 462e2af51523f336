package postgres

import (
	"context"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// newsletterRepository implements the domain.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{db: db}
}

// Subscribe records a newsletter opt-in.
func (repo *newsletterRepository) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	subM := &model.NewsletterSubscriptionModel{Email: email}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrAlreadySubscribed
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to subscribe email")
	}

	return &entity.NewsletterSubscription{
		ID:        subM.ID,
		Email:     subM.Email,
		CreatedAt: subM.CreatedAt,
	}, nil
}
