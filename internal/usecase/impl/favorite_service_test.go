package impl

import (
	"context"
	"testing"

	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	mockRepo "playfinder/internal/mocks/repository"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	venueRepo    *mockRepo.MockVenueRepository
}

func newFavoriteServiceForTest(t *testing.T) (usecase.FavoriteUsecase, *favoriteServiceMocks) {
	mocks := &favoriteServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		venueRepo:    mockRepo.NewMockVenueRepository(t),
	}

	svc := NewFavoriteService(FavoriteServiceParams{
		TxManager:    mocks.txManager,
		FavoriteRepo: mocks.favoriteRepo,
		VenueRepo:    mocks.venueRepo,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func (m *favoriteServiceMocks) expectTransaction(t *testing.T, ctx context.Context) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}

func TestFavoriteService_ToggleFavorite_SavesWhenAbsent(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("FavoriteRepo").Return(mocks.favoriteRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.favoriteRepo.On("Find", ctx, userID, venueID).Return(nil, repository.ErrFavoriteNotFound)
	mocks.favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)
	mocks.venueRepo.On("AddFavoriteCount", ctx, venueID, 1).Return(nil)

	saved, err := svc.ToggleFavorite(ctx, userID, venueID)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestFavoriteService_ToggleFavorite_RemovesWhenPresent(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("FavoriteRepo").Return(mocks.favoriteRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.favoriteRepo.On("Find", ctx, userID, venueID).
		Return(&entity.Favorite{UserID: userID, VenueID: venueID}, nil)
	mocks.favoriteRepo.On("Delete", ctx, userID, venueID).Return(nil)
	mocks.venueRepo.On("AddFavoriteCount", ctx, venueID, -1).Return(nil)

	saved, err := svc.ToggleFavorite(ctx, userID, venueID)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestFavoriteService_ToggleFavorite_UnpublishedVenue(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPending}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	saved, err := svc.ToggleFavorite(ctx, uuid.New(), venueID)
	assert.False(t, saved)
	require.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}

func TestFavoriteService_ToggleFavorite_ConcurrentDoubleSave(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("FavoriteRepo").Return(mocks.favoriteRepo)
	mocks.favoriteRepo.On("Find", ctx, userID, venueID).Return(nil, repository.ErrFavoriteNotFound)
	mocks.favoriteRepo.On("Create", ctx, mock.AnythingOfType("*entity.Favorite")).
		Return(repository.ErrDuplicateFavorite)

	saved, err := svc.ToggleFavorite(ctx, userID, venueID)
	assert.False(t, saved)
	require.ErrorIs(t, err, domainerrors.ErrFavoriteConflict)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	svc, mocks := newFavoriteServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	venues := []*entity.Venue{publishedVenue("saved-venue")}

	mocks.favoriteRepo.On("ListVenuesByUser", ctx, userID).Return(venues, nil)

	got, err := svc.ListFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, venues, got)
}
