package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "playfinder/internal/delivery/context"
	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	venueRepo repository.VenueRepository
	offerRepo repository.OfferRepository
	logger    *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	VenueRepo repository.VenueRepository
	OfferRepo repository.OfferRepository
	Logger    *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		venueRepo: params.VenueRepo,
		offerRepo: params.OfferRepo,
		logger:    params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer attaches an offer to a venue. Only the venue owner may do so;
// the offer goes live immediately, there is no approval step.
func (srv *offerService) CreateOffer(ctx context.Context, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input.Title, input.StartsAt, input.ExpiresAt); err != nil {
		return nil, err
	}

	if err := srv.checkVenueOwner(ctx, input.VenueID, input.ActorID); err != nil {
		return nil, err
	}

	offer := &entity.Offer{
		VenueID:      input.VenueID,
		Title:        input.Title,
		Description:  input.Description,
		Terms:        input.Terms,
		DiscountText: input.DiscountText,
		StartsAt:     input.StartsAt,
		ExpiresAt:    input.ExpiresAt,
		IsActive:     true,
	}

	if err := srv.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).Debug("Offer created", slog.Any("venueID", input.VenueID), slog.String("title", input.Title))

	return offer, nil
}

// UpdateOffer applies owner edits to an existing offer.
func (srv *offerService) UpdateOffer(ctx context.Context, input *usecase.UpdateOfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input.Title, input.StartsAt, input.ExpiresAt); err != nil {
		return nil, err
	}

	offer, err := srv.loadOwnedOffer(ctx, input.OfferID, input.ActorID)
	if err != nil {
		return nil, err
	}

	offer.Title = input.Title
	offer.Description = input.Description
	offer.Terms = input.Terms
	offer.DiscountText = input.DiscountText
	offer.StartsAt = input.StartsAt
	offer.ExpiresAt = input.ExpiresAt
	offer.IsActive = input.IsActive

	if err := srv.offerRepo.Update(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to update offer")
	}

	return offer, nil
}

// DeleteOffer removes an offer. Only the venue owner may do so.
func (srv *offerService) DeleteOffer(ctx context.Context, offerID, actorID uuid.UUID) error {
	if _, err := srv.loadOwnedOffer(ctx, offerID, actorID); err != nil {
		return err
	}

	if err := srv.offerRepo.Delete(ctx, offerID); err != nil {
		return errors.Wrap(err, "failed to delete offer")
	}

	return nil
}

// ListVenueOffers returns a venue's offers, newest first.
func (srv *offerService) ListVenueOffers(ctx context.Context, venueID uuid.UUID) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

func (srv *offerService) loadOwnedOffer(ctx context.Context, offerID, actorID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	if err := srv.checkVenueOwner(ctx, offer.VenueID, actorID); err != nil {
		return nil, err
	}

	return offer, nil
}

func (srv *offerService) checkVenueOwner(ctx context.Context, venueID, actorID uuid.UUID) error {
	venue, err := srv.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return domainerrors.ErrVenueNotFound
		}

		return errors.Wrap(err, "failed to load venue for offer")
	}

	if venue.OwnerID == nil || *venue.OwnerID != actorID {
		return domainerrors.ErrVenueOwnershipViolation
	}

	return nil
}

func validateOfferInput(title string, startsAt, expiresAt time.Time) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("offer title is required")
	}
	if startsAt.IsZero() || expiresAt.IsZero() {
		return domainerrors.ErrValidationFailed.WrapMessage("offer start and expiry are required")
	}
	if !expiresAt.After(startsAt) {
		return domainerrors.ErrValidationFailed.WrapMessage("offer must expire after it starts")
	}

	return nil
}
