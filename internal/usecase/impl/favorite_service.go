package impl

import (
	"context"
	"log/slog"

	deliverycontext "playfinder/internal/delivery/context"
	"playfinder/internal/domain/entity"
	domainerrors "playfinder/internal/domain/errors"
	"playfinder/internal/domain/repository"
	"playfinder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	venueRepo    repository.VenueRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	VenueRepo    repository.VenueRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		venueRepo:    params.VenueRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleFavorite saves the venue if not saved, removes it otherwise. The
// check and the write share one transaction so the venue's favourite counter
// stays consistent with the join rows; the unique constraint catches the
// remaining double-toggle race.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID, venueID uuid.UUID) (bool, error) {
	venue, err := srv.venueRepo.FindByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return false, domainerrors.ErrVenueNotFound
		}

		return false, errors.Wrap(err, "failed to load venue for favourite toggle")
	}
	if venue.Status != entity.VenueStatusPublished {
		return false, domainerrors.ErrVenueNotFound
	}

	var saved bool
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		_, err := favoriteRepo.Find(ctx, userID, venueID)
		switch {
		case err == nil:
			if err := favoriteRepo.Delete(ctx, userID, venueID); err != nil {
				return errors.Wrap(err, "failed to remove favourite")
			}
			saved = false

			return repoFactory.VenueRepo().AddFavoriteCount(ctx, venueID, -1)

		case errors.Is(err, repository.ErrFavoriteNotFound):
			createErr := favoriteRepo.Create(ctx, &entity.Favorite{UserID: userID, VenueID: venueID})
			if createErr != nil {
				if errors.Is(createErr, repository.ErrDuplicateFavorite) {
					return domainerrors.ErrFavoriteConflict
				}

				return errors.Wrap(createErr, "failed to save favourite")
			}
			saved = true

			return repoFactory.VenueRepo().AddFavoriteCount(ctx, venueID, 1)

		default:
			return errors.Wrap(err, "failed to look up favourite")
		}
	})
	if err != nil {
		return false, err
	}

	srv.log(ctx).Debug("Favourite toggled",
		slog.Any("userID", userID),
		slog.Any("venueID", venueID),
		slog.Bool("saved", saved),
	)

	return saved, nil
}

// ListFavorites returns the user's saved venues, newest-saved first.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error) {
	venues, err := srv.favoriteRepo.ListVenuesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favourites")
	}

	return venues, nil
}
