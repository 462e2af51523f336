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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	venueRepo  repository.VenueRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	VenueRepo  repository.VenueRepository
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		venueRepo:  params.VenueRepo,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores a review and refreshes the venue's rating stats in the
// same transaction, so the denormalised average never drifts.
func (srv *reviewService) CreateReview(ctx context.Context, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review comment is required")
	}

	venue, err := srv.venueRepo.FindByID(ctx, input.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, domainerrors.ErrVenueNotFound
		}

		return nil, errors.Wrap(err, "failed to load venue for review")
	}
	if venue.Status != entity.VenueStatusPublished {
		return nil, domainerrors.ErrVenueNotFound
	}

	review := &entity.Review{
		VenueID: input.VenueID,
		UserID:  input.UserID,
		Rating:  input.Rating,
		Title:   input.Title,
		Comment: input.Comment,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrDuplicateReview
			}

			return errors.Wrap(err, "failed to create review")
		}

		return repoFactory.VenueRepo().RefreshRatingStats(ctx, input.VenueID)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Review created",
		slog.Any("venueID", input.VenueID),
		slog.Any("userID", input.UserID),
		slog.Int("rating", input.Rating),
	)

	return review, nil
}

// ListVenueReviews returns a venue's reviews, newest first.
func (srv *reviewService) ListVenueReviews(ctx context.Context, venueID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, nil
}

// RespondToReview stores the venue owner's reply. Only the owner of the
// reviewed venue may respond.
func (srv *reviewService) RespondToReview(ctx context.Context, input *usecase.RespondToReviewInput) error {
	if strings.TrimSpace(input.Response) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("response text is required")
	}

	review, err := srv.reviewRepo.FindByID(ctx, input.ReviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to load review")
	}

	venue, err := srv.venueRepo.FindByID(ctx, review.VenueID)
	if err != nil {
		return errors.Wrap(err, "failed to load venue for review response")
	}
	if venue.OwnerID == nil || *venue.OwnerID != input.ActorID {
		return domainerrors.ErrVenueOwnershipViolation
	}

	if err := srv.reviewRepo.SetOwnerResponse(ctx, input.ReviewID, input.Response); err != nil {
		return errors.Wrap(err, "failed to store owner response")
	}

	return nil
}

// DeleteReview removes a review. Allowed for its author or an admin. The
// venue's rating stats are refreshed in the same transaction.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorIsAdmin bool) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to load review for deletion")
	}

	if review.UserID != actorID && !actorIsAdmin {
		return domainerrors.ErrForbidden
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ReviewRepo().Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		return repoFactory.VenueRepo().RefreshRatingStats(ctx, review.VenueID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Review deleted", slog.Any("reviewID", reviewID), slog.Any("actorID", actorID))

	return nil
}
