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

type claimServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	venueRepo *mockRepo.MockVenueRepository
	claimRepo *mockRepo.MockClaimRepository
}

func newClaimServiceForTest(t *testing.T) (usecase.ClaimUsecase, *claimServiceMocks) {
	mocks := &claimServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		venueRepo: mockRepo.NewMockVenueRepository(t),
		claimRepo: mockRepo.NewMockClaimRepository(t),
	}

	svc := NewClaimService(ClaimServiceParams{
		TxManager: mocks.txManager,
		VenueRepo: mocks.venueRepo,
		ClaimRepo: mocks.claimRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func TestClaimService_SubmitClaim_Success(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	userID := uuid.New()
	venue := &entity.Venue{ID: venueID, Status: entity.VenueStatusPublished}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mocks.claimRepo.On("Create", ctx, mock.AnythingOfType("*entity.Claim")).Return(nil)

	claim, err := svc.SubmitClaim(ctx, &usecase.SubmitClaimInput{
		VenueID: venueID,
		UserID:  userID,
		Message: "I manage this centre, see our website footer.",
	})
	require.NoError(t, err)
	assert.Equal(t, venueID, claim.VenueID)
	assert.Equal(t, userID, claim.UserID)
	assert.Equal(t, entity.ClaimStatusPending, claim.Status)
}

func TestClaimService_SubmitClaim_EmptyMessage(t *testing.T) {
	svc, _ := newClaimServiceForTest(t)

	claim, err := svc.SubmitClaim(context.Background(), &usecase.SubmitClaimInput{
		VenueID: uuid.New(),
		UserID:  uuid.New(),
		Message: "  ",
	})
	assert.Nil(t, claim)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClaimService_SubmitClaim_VenueAlreadyOwned(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mocks.venueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	claim, err := svc.SubmitClaim(ctx, &usecase.SubmitClaimInput{
		VenueID: venueID,
		UserID:  uuid.New(),
		Message: "This is mine",
	})
	assert.Nil(t, claim)
	require.ErrorIs(t, err, domainerrors.ErrVenueAlreadyOwned)
}

func TestClaimService_ApproveClaim_AssignsOwner(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	claimID := uuid.New()
	venueID := uuid.New()
	claimantID := uuid.New()
	claim := &entity.Claim{
		ID:      claimID,
		VenueID: venueID,
		UserID:  claimantID,
		Status:  entity.ClaimStatusPending,
	}

	mocks.claimRepo.On("FindByID", ctx, claimID).Return(claim, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.On("ClaimRepo").Return(mocks.claimRepo)
	factory.On("VenueRepo").Return(mocks.venueRepo)
	mocks.claimRepo.On("Decide", ctx, claimID, entity.ClaimStatusApproved).Return(nil)
	mocks.venueRepo.On("AssignOwner", ctx, venueID, claimantID).Return(nil)

	mocks.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.ApproveClaim(ctx, claimID)
	require.NoError(t, err)
}

func TestClaimService_ApproveClaim_AlreadyDecided(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	claimID := uuid.New()
	claim := &entity.Claim{ID: claimID, Status: entity.ClaimStatusApproved}

	mocks.claimRepo.On("FindByID", ctx, claimID).Return(claim, nil)

	err := svc.ApproveClaim(ctx, claimID)
	require.ErrorIs(t, err, domainerrors.ErrClaimAlreadyDecided)
}

func TestClaimService_RejectClaim_Success(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	claimID := uuid.New()
	claim := &entity.Claim{ID: claimID, VenueID: uuid.New(), Status: entity.ClaimStatusPending}

	mocks.claimRepo.On("FindByID", ctx, claimID).Return(claim, nil)
	mocks.claimRepo.On("Decide", ctx, claimID, entity.ClaimStatusRejected).Return(nil)

	err := svc.RejectClaim(ctx, claimID)
	require.NoError(t, err)
}

func TestClaimService_RejectClaim_NotFound(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	claimID := uuid.New()
	mocks.claimRepo.On("FindByID", ctx, claimID).Return(nil, repository.ErrClaimNotFound)

	err := svc.RejectClaim(ctx, claimID)
	require.ErrorIs(t, err, domainerrors.ErrClaimNotFound)
}

func TestClaimService_ListPendingClaims(t *testing.T) {
	svc, mocks := newClaimServiceForTest(t)

	ctx := context.Background()
	claims := []*entity.Claim{{ID: uuid.New(), Status: entity.ClaimStatusPending}}

	mocks.claimRepo.On("ListPending", ctx).Return(claims, nil)

	got, err := svc.ListPendingClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}
