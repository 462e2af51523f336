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

type reviewServiceMocks struct {
	txManager  *mockRepo.MockTransactionManager
	venueRepo  *mockRepo.MockVenueRepository
	reviewRepo *mockRepo.MockReviewRepository
}

func newReviewServiceForTest(t *testing.T) (usecase.ReviewUsecase, *reviewServiceMocks) {
	mocks := &reviewServiceMocks{
		txManager:  mockRepo.NewMockTransactionManager(t),
		venueRepo:  mockRepo.NewMockVenueRepository(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		TxManager:  mocks.txManager,
		VenueRepo:  mocks.venueRepo,
		ReviewRepo: mocks.reviewRepo,
		Logger:     newDiscardLogger(),
	})

	return svc, mocks
}

func (m *reviewServiceMocks) expectTransaction(t *testing.T, ctx context.Context) *mockRepo.MockRepositoryFactory {
	factory := mockRepo.NewMockRepositoryFactory(t)
	m.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return factory
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	userID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("ReviewRepo").Return(mocks.reviewRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mocks.venueRepo.On("RefreshRatingStats", ctx, venueID).Return(nil)

	review, err := svc.CreateReview(ctx, &usecase.CreateReviewInput{
		VenueID: venueID,
		UserID:  userID,
		Rating:  5,
		Title:   "Great for toddlers",
		Comment: "Clean, safe and the staff were lovely.",
	})
	require.NoError(t, err)
	assert.Equal(t, venueID, review.VenueID)
	assert.Equal(t, userID, review.UserID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_Validation(t *testing.T) {
	svc, _ := newReviewServiceForTest(t)

	ctx := context.Background()

	_, err := svc.CreateReview(ctx, &usecase.CreateReviewInput{
		VenueID: uuid.New(), UserID: uuid.New(), Rating: 6, Comment: "too high",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.CreateReview(ctx, &usecase.CreateReviewInput{
		VenueID: uuid.New(), UserID: uuid.New(), Rating: 3, Comment: "   ",
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_CreateReview_UnpublishedVenue(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPending}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	review, err := svc.CreateReview(ctx, &usecase.CreateReviewInput{
		VenueID: venueID, UserID: uuid.New(), Rating: 4, Comment: "nice",
	})
	assert.Nil(t, review)
	require.ErrorIs(t, err, domainerrors.ErrVenueNotFound)
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("ReviewRepo").Return(mocks.reviewRepo)
	mocks.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Return(repository.ErrDuplicateReview)

	review, err := svc.CreateReview(ctx, &usecase.CreateReviewInput{
		VenueID: venueID, UserID: uuid.New(), Rating: 4, Comment: "again",
	})
	assert.Nil(t, review)
	require.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestReviewService_RespondToReview_Success(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	venueID := uuid.New()
	ownerID := uuid.New()
	review := &entity.Review{ID: reviewID, VenueID: venueID}
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mocks.reviewRepo.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.reviewRepo.On("SetOwnerResponse", ctx, reviewID, "Thanks for visiting!").Return(nil)

	err := svc.RespondToReview(ctx, &usecase.RespondToReviewInput{
		ReviewID: reviewID,
		ActorID:  ownerID,
		Response: "Thanks for visiting!",
	})
	require.NoError(t, err)
}

func TestReviewService_RespondToReview_NotOwner(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	venueID := uuid.New()
	ownerID := uuid.New()
	review := &entity.Review{ID: reviewID, VenueID: venueID}
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mocks.reviewRepo.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	err := svc.RespondToReview(ctx, &usecase.RespondToReviewInput{
		ReviewID: reviewID,
		ActorID:  uuid.New(),
		Response: "I own this, honest",
	})
	require.ErrorIs(t, err, domainerrors.ErrVenueOwnershipViolation)
}

func TestReviewService_DeleteReview_ByAuthor(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	venueID := uuid.New()
	authorID := uuid.New()
	review := &entity.Review{ID: reviewID, VenueID: venueID, UserID: authorID}

	mocks.reviewRepo.On("FindByID", ctx, reviewID).Return(review, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("ReviewRepo").Return(mocks.reviewRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.reviewRepo.On("Delete", ctx, reviewID).Return(nil)
	mocks.venueRepo.On("RefreshRatingStats", ctx, venueID).Return(nil)

	err := svc.DeleteReview(ctx, reviewID, authorID, false)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_ByAdmin(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	venueID := uuid.New()
	review := &entity.Review{ID: reviewID, VenueID: venueID, UserID: uuid.New()}

	mocks.reviewRepo.On("FindByID", ctx, reviewID).Return(review, nil)

	factory := mocks.expectTransaction(t, ctx)
	factory.On("ReviewRepo").Return(mocks.reviewRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.reviewRepo.On("Delete", ctx, reviewID).Return(nil)
	mocks.venueRepo.On("RefreshRatingStats", ctx, venueID).Return(nil)

	err := svc.DeleteReview(ctx, reviewID, uuid.New(), true)
	require.NoError(t, err)
}

func TestReviewService_DeleteReview_Forbidden(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{ID: reviewID, VenueID: uuid.New(), UserID: uuid.New()}

	mocks.reviewRepo.On("FindByID", ctx, reviewID).Return(review, nil)

	err := svc.DeleteReview(ctx, reviewID, uuid.New(), false)
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReviewService_ListVenueReviews(t *testing.T) {
	svc, mocks := newReviewServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	reviews := []*entity.Review{{ID: uuid.New(), VenueID: venueID, Rating: 4}}

	mocks.reviewRepo.On("ListByVenue", ctx, venueID).Return(reviews, nil)

	got, err := svc.ListVenueReviews(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, reviews, got)
}
