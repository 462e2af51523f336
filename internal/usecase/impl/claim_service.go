package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "playfinder/internal/delivery/context"
	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// claimService implements the ClaimUsecase interface.
type claimService struct {
	txManager repository.TransactionManager
	venueRepo repository.VenueRepository
	claimRepo repository.ClaimRepository
	logger    *slog.Logger
}

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	VenueRepo repository.VenueRepository
	ClaimRepo repository.ClaimRepository
	Logger    *slog.Logger
}

// NewClaimService is the constructor for claimService.
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		txManager: params.TxManager,
		venueRepo: params.VenueRepo,
		claimRepo: params.ClaimRepo,
		logger:    params.Logger,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitClaim records an ownership claim against an unclaimed listing.
func (srv *claimService) SubmitClaim(ctx context.Context, input *usecase.SubmitClaimInput) (*entity.Claim, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("supporting message is required")
	}

	venue, err := srv.venueRepo.FindByID(ctx, input.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to load venue for claim")
	}

	if venue.OwnerID != nil {
		return nil, domainerrors.ErrVenueAlreadyOwned
	}

	claim := &entity.Claim{
		VenueID: input.VenueID,
		UserID:  input.UserID,
		Message: input.Message,
		Status:  entity.ClaimStatusPending,
	}

	if err := srv.claimRepo.Create(ctx, claim); err != nil {
		return nil, errors.Wrap(err, "failed to create claim")
	}

	srv.log(ctx).Info("Claim submitted", slog.Any("venueID", input.VenueID), slog.Any("userID", input.UserID))

	return claim, nil
}

// ListPendingClaims returns the undecided claims, oldest first.
func (srv *claimService) ListPendingClaims(ctx context.Context) ([]*entity.Claim, error) {
	claims, err := srv.claimRepo.ListPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending claims")
	}

	return claims, nil
}

// ApproveClaim marks the claim approved and assigns the claimant as the
// venue's owner. Both writes share one transaction; if the venue gained an
// owner in the meantime the whole approval rolls back.
func (srv *claimService) ApproveClaim(ctx context.Context, claimID uuid.UUID) error {
	claim, err := srv.loadPendingClaim(ctx, claimID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ClaimRepo().Decide(ctx, claimID, entity.ClaimStatusApproved); err != nil {
			if errors.Is(err, repository.ErrClaimNotFound) {
				return domainerrors.ErrClaimAlreadyDecided
			}

			return errors.Wrap(err, "failed to decide claim")
		}

		if err := repoFactory.VenueRepo().AssignOwner(ctx, claim.VenueID, claim.UserID); err != nil {
			return errors.Wrap(err, "failed to assign venue owner")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Claim approved",
		slog.Any("claimID", claimID),
		slog.Any("venueID", claim.VenueID),
		slog.Any("newOwnerID", claim.UserID),
	)

	return nil
}

// RejectClaim marks the claim rejected. The venue stays unclaimed.
func (srv *claimService) RejectClaim(ctx context.Context, claimID uuid.UUID) error {
	if _, err := srv.loadPendingClaim(ctx, claimID); err != nil {
		return err
	}

	if err := srv.claimRepo.Decide(ctx, claimID, entity.ClaimStatusRejected); err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return domainerrors.ErrClaimAlreadyDecided
		}

		return errors.Wrap(err, "failed to decide claim")
	}

	srv.log(ctx).Info("Claim rejected", slog.Any("claimID", claimID))

	return nil
}

func (srv *claimService) loadPendingClaim(ctx context.Context, claimID uuid.UUID) (*entity.Claim, error) {
	claim, err := srv.claimRepo.FindByID(ctx, claimID)
	if err != nil {
		if errors.Is(err, repository.ErrClaimNotFound) {
			return nil, domainerrors.ErrClaimNotFound
		}

		return nil, errors.Wrap(err, "failed to load claim")
	}

	if claim.Status != entity.ClaimStatusPending {
		return nil, domainerrors.ErrClaimAlreadyDecided
	}

	return claim, nil
}
