package usecase

import (
	"context"

	"playfinder/internal/domain/entity"
)

// NewsletterUsecase records newsletter opt-ins. Subscribing an address that
// is already on the list succeeds without creating a duplicate.
type NewsletterUsecase interface {
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error)
}
