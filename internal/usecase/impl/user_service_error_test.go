package impl

import (
	"context"
	"testing"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	mockRepo "playfinder/internal/mocks/repository"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_AdminRoleRejected(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		DisplayName: "Sneaky",
		Email:       "sneaky@example.com",
		Password:    "password123",
		Role:        entity.RoleAdmin,
	})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	svc, _ := newUserServiceForTest(t)

	output, err := svc.Register(context.Background(), &usecase.RegisterInput{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "short",
		Role:        entity.RoleParent,
	})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	mocks.hasher.On("Hash", "password123").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(mocks.userRepo)
	mocks.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed").
		Return(repository.ErrEmailTaken)

	mocks.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.Register(ctx, &usecase.RegisterInput{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "password123",
		Role:        entity.RoleParent,
	})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	mocks.userRepo.On("FindCredentialsByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindCredentialsByEmail", ctx, "sam@example.com").
		Return(&repository.Credentials{UserID: userID, PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "wrong", "hashed").Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "sam@example.com", Password: "wrong"})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	mocks.tokenService.On("ValidateRefreshToken", "garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_RevokedToken(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	mocks.tokenService.On("ValidateRefreshToken", "refresh-token").
		Return(&service.TokenClaims{UserID: userID, Role: "parent"}, nil)
	mocks.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshTokenRepo.On("FindByHash", ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	output, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	assert.Nil(t, output)
	require.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	mocks.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetProfile(ctx, userID)
	assert.Nil(t, user)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
