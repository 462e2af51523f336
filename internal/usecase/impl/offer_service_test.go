package impl

import (
	"context"
	"testing"
	"time"

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

func newOfferServiceForTest(t *testing.T) (usecase.OfferUsecase, *mockRepo.MockVenueRepository, *mockRepo.MockOfferRepository) {
	mockVenueRepo := mockRepo.NewMockVenueRepository(t)
	mockOfferRepo := mockRepo.NewMockOfferRepository(t)

	svc := NewOfferService(OfferServiceParams{
		VenueRepo: mockVenueRepo,
		OfferRepo: mockOfferRepo,
		Logger:    newDiscardLogger(),
	})

	return svc, mockVenueRepo, mockOfferRepo
}

func validCreateOfferInput(venueID, actorID uuid.UUID) *usecase.CreateOfferInput {
	return &usecase.CreateOfferInput{
		VenueID:      venueID,
		ActorID:      actorID,
		Title:        "School holidays special",
		DiscountText: "20% off weekday sessions",
		StartsAt:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestOfferService_CreateOffer_Success(t *testing.T) {
	svc, mockVenueRepo, mockOfferRepo := newOfferServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mockVenueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mockOfferRepo.On("Create", ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	offer, err := svc.CreateOffer(ctx, validCreateOfferInput(venueID, ownerID))
	require.NoError(t, err)
	assert.Equal(t, venueID, offer.VenueID)
	assert.True(t, offer.IsActive)
}

func TestOfferService_CreateOffer_NotOwner(t *testing.T) {
	svc, mockVenueRepo, _ := newOfferServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	ownerID := uuid.New()
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mockVenueRepo.On("FindByID", ctx, venueID).Return(venue, nil)

	offer, err := svc.CreateOffer(ctx, validCreateOfferInput(venueID, uuid.New()))
	assert.Nil(t, offer)
	require.ErrorIs(t, err, domainerrors.ErrVenueOwnershipViolation)
}

func TestOfferService_CreateOffer_Validation(t *testing.T) {
	svc, _, _ := newOfferServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	actorID := uuid.New()

	noTitle := validCreateOfferInput(venueID, actorID)
	noTitle.Title = " "
	_, err := svc.CreateOffer(ctx, noTitle)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	noDates := validCreateOfferInput(venueID, actorID)
	noDates.StartsAt = time.Time{}
	_, err = svc.CreateOffer(ctx, noDates)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	inverted := validCreateOfferInput(venueID, actorID)
	inverted.ExpiresAt = inverted.StartsAt.Add(-time.Hour)
	_, err = svc.CreateOffer(ctx, inverted)
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOfferService_UpdateOffer_Success(t *testing.T) {
	svc, mockVenueRepo, mockOfferRepo := newOfferServiceForTest(t)

	ctx := context.Background()
	offerID := uuid.New()
	venueID := uuid.New()
	ownerID := uuid.New()
	offer := &entity.Offer{ID: offerID, VenueID: venueID, Title: "Old title", IsActive: true}
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mockOfferRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	mockVenueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mockOfferRepo.On("Update", ctx, mock.AnythingOfType("*entity.Offer")).Return(nil)

	updated, err := svc.UpdateOffer(ctx, &usecase.UpdateOfferInput{
		OfferID:   offerID,
		ActorID:   ownerID,
		Title:     "New title",
		StartsAt:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		IsActive:  false,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.False(t, updated.IsActive)
}

func TestOfferService_DeleteOffer_Success(t *testing.T) {
	svc, mockVenueRepo, mockOfferRepo := newOfferServiceForTest(t)

	ctx := context.Background()
	offerID := uuid.New()
	venueID := uuid.New()
	ownerID := uuid.New()
	offer := &entity.Offer{ID: offerID, VenueID: venueID}
	venue := &entity.Venue{ID: venueID, OwnerID: &ownerID}

	mockOfferRepo.On("FindByID", ctx, offerID).Return(offer, nil)
	mockVenueRepo.On("FindByID", ctx, venueID).Return(venue, nil)
	mockOfferRepo.On("Delete", ctx, offerID).Return(nil)

	err := svc.DeleteOffer(ctx, offerID, ownerID)
	require.NoError(t, err)
}

func TestOfferService_DeleteOffer_NotFound(t *testing.T) {
	svc, _, mockOfferRepo := newOfferServiceForTest(t)

	ctx := context.Background()
	offerID := uuid.New()
	mockOfferRepo.On("FindByID", ctx, offerID).Return(nil, repository.ErrOfferNotFound)

	err := svc.DeleteOffer(ctx, offerID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}

func TestOfferService_ListVenueOffers(t *testing.T) {
	svc, _, mockOfferRepo := newOfferServiceForTest(t)

	ctx := context.Background()
	venueID := uuid.New()
	offers := []*entity.Offer{{ID: uuid.New(), VenueID: venueID, Title: "Special"}}

	mockOfferRepo.On("ListByVenue", ctx, venueID).Return(offers, nil)

	got, err := svc.ListVenueOffers(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, offers, got)
}
