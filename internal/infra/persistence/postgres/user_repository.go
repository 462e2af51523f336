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

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user, its credentials and profile rows together.
// Callers run this inside a transaction via TransactionManager.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := &model.UserModel{
		ID:    user.ID,
		Email: user.Email,
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	credentialM := &model.UserCredentialModel{
		UserID:       userM.ID,
		PasswordHash: passwordHash,
	}
	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create credentials")
	}

	profileM := &model.UserProfileModel{
		UserID:      userM.ID,
		DisplayName: user.Profile.DisplayName,
		Role:        user.Profile.Role.String(),
	}
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	user.ID = userM.ID
	user.Profile.UserID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user with its profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user with its profile by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(&userM), nil
}

// FindCredentialsByEmail returns the stored hash for a login attempt.
func (repo *userRepository) FindCredentialsByEmail(ctx context.Context, email string) (*repository.Credentials, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Credential").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	if userM.Credential == nil {
		return nil, repository.ErrUserNotFound
	}

	return &repository.Credentials{
		UserID:       userM.ID,
		PasswordHash: userM.Credential.PasswordHash,
	}, nil
}

// UpdateProfile rewrites the profile row.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"display_name": profile.DisplayName,
			"role":         profile.Role.String(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.Profile != nil {
		user.Profile = &entity.Profile{
			UserID:      data.Profile.UserID,
			DisplayName: data.Profile.DisplayName,
			Role:        entity.Role(data.Profile.Role),
			UpdatedAt:   data.Profile.UpdatedAt,
		}
	}

	return user
}
