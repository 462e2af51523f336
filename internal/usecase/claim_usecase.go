package usecase

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitClaimInput defines the data required to claim an unclaimed listing.
type SubmitClaimInput struct {
	VenueID uuid.UUID
	UserID  uuid.UUID
	Message string
}

// ClaimUsecase defines the ownership claim workflow. Approving a claim
// assigns the claimant as the venue's owner.
type ClaimUsecase interface {
	SubmitClaim(ctx context.Context, input *SubmitClaimInput) (*entity.Claim, error)
	ListPendingClaims(ctx context.Context) ([]*entity.Claim, error)
	ApproveClaim(ctx context.Context, claimID uuid.UUID) error
	RejectClaim(ctx context.Context, claimID uuid.UUID) error
}
