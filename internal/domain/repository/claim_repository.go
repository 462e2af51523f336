package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrClaimNotFound is returned when no claim matches the lookup.
var ErrClaimNotFound = errors.New("claim not found")

// ClaimRepository persists venue ownership claims.
type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error)

	// Decide records the admin decision and its timestamp.
	Decide(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error

	ListPending(ctx context.Context) ([]*entity.Claim, error)
}
