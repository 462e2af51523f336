package impl

import (
	"context"
	"testing"
	"time"

	"playfinder/internal/domain/entity"
	"playfinder/internal/domain/repository"
	"playfinder/internal/domain/service"
	mockRepo "playfinder/internal/mocks/repository"
	mockSvc "playfinder/internal/mocks/service"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	mocks := &userServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	svc := NewUserService(UserServiceParams{
		TxManager:        mocks.txManager,
		UserRepo:         mocks.userRepo,
		RefreshTokenRepo: mocks.refreshTokenRepo,
		Hasher:           mocks.hasher,
		TokenService:     mocks.tokenService,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return svc, mocks
}

func TestUserService_Register_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		DisplayName: "Sam",
		Email:       "sam@example.com",
		Password:    "password123",
		Role:        entity.RoleParent,
	}

	mocks.hasher.On("Hash", "password123").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(mocks.userRepo)
	mocks.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed").Return(nil)

	mocks.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.Register(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "sam@example.com", output.User.Email)
	assert.Equal(t, entity.RoleParent, output.User.Profile.Role)
}

func TestUserService_Register_VenueOwnerRole(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		DisplayName: "Jordan",
		Email:       "jordan@example.com",
		Password:    "password123",
		Role:        entity.RoleVenueOwner,
	}

	mocks.hasher.On("Hash", "password123").Return("hashed", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("UserRepo").Return(mocks.userRepo)
	mocks.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User"), "hashed").Return(nil)

	mocks.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVenueOwner, output.User.Profile.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Email:   "sam@example.com",
		Profile: &entity.Profile{UserID: userID, Role: entity.RoleParent},
	}

	mocks.userRepo.On("FindCredentialsByEmail", ctx, "sam@example.com").
		Return(&repository.Credentials{UserID: userID, PasswordHash: "hashed"}, nil)
	mocks.hasher.On("Check", "password123", "hashed").Return(true)
	mocks.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	mocks.tokenService.On("GenerateTokens", userID, "parent").
		Return("access-token", "refresh-token", nil)
	mocks.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(args mock.Arguments) {
			token := args.Get(1).(*entity.RefreshToken)
			assert.Equal(t, userID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
		}).
		Return(nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{Email: "sam@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, Role: entity.RoleVenueOwner},
	}

	mocks.tokenService.On("ValidateRefreshToken", "refresh-token").
		Return(&service.TokenClaims{UserID: userID, Role: "venue_owner"}, nil)
	mocks.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshTokenRepo.On("FindByHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
	mocks.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	mocks.tokenService.On("GenerateTokens", userID, "venue_owner").
		Return("new-access-token", "unused", nil)

	output, err := svc.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_Logout_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	mocks.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshTokenRepo.On("DeleteByHash", ctx, "refresh-hash").Return(nil)

	err := svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
}

func TestUserService_Logout_AlreadyLoggedOut(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	mocks.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	mocks.refreshTokenRepo.On("DeleteByHash", ctx, "refresh-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	require.NoError(t, err)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Email:   "sam@example.com",
		Profile: &entity.Profile{UserID: userID, DisplayName: "Sam", Role: entity.RoleParent},
	}

	mocks.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	got, err := svc.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	svc, mocks := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:      userID,
		Profile: &entity.Profile{UserID: userID, DisplayName: "Sam", Role: entity.RoleParent},
	}

	mocks.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	mocks.userRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(args mock.Arguments) {
			profile := args.Get(1).(*entity.Profile)
			assert.Equal(t, "Sam R", profile.DisplayName)
			assert.Equal(t, entity.RoleParent, profile.Role)
		}).
		Return(nil)

	err := svc.UpdateProfile(ctx, &usecase.UpdateProfileInput{UserID: userID, DisplayName: "Sam R"})
	require.NoError(t, err)
}
