package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "playfinder/internal/delivery/context"
	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		logger:         params.Logger,
	}
}

// Subscribe records a newsletter opt-in. Subscribing an address that is
// already on the list succeeds without creating a duplicate row.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
	}

	subscription, err := srv.newsletterRepo.Subscribe(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return &entity.NewsletterSubscription{Email: email}, nil
		}

		return nil, errors.Wrap(err, "failed to record subscription")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Debug("Newsletter subscription recorded", slog.String("email", email))

	return subscription, nil
}
