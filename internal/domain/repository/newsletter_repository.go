package repository

import (
	"context"

	"playfinder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrAlreadySubscribed is returned when the email is already on the list.
var ErrAlreadySubscribed = errors.New("email already subscribed")

// NewsletterRepository persists newsletter opt-ins.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error)
}
