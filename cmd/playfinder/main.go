package main

import (
	"context"
	"log/slog"
	"os"

	"playfinder/config"
	"playfinder/internal/delivery"
	"playfinder/internal/delivery/http"
	"playfinder/internal/delivery/http/middleware"
	"playfinder/internal/delivery/http/router/handler"
	"playfinder/internal/domain/service"
	"playfinder/internal/infra/auth"
	"playfinder/internal/infra/geoip"
	logs "playfinder/internal/infra/log"
	"playfinder/internal/infra/persistence/postgres"
	"playfinder/internal/infra/pubsub"
	"playfinder/internal/infra/qrcode"
	"playfinder/internal/infra/storage"
	"playfinder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVenueRepository,
			postgres.NewReviewRepository,
			postgres.NewOfferRepository,
			postgres.NewFavoriteRepository,
			postgres.NewClaimRepository,
			postgres.NewPhotoRepository,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewNewsletterRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			geoip.NewLocator,
			storage.NewPhotoStorage,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://playfinder.au")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewUserService,
			impl.NewVenueService,
			impl.NewReviewService,
			impl.NewFavoriteService,
			impl.NewOfferService,
			impl.NewClaimService,
			impl.NewNewsletterService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewVenueHandler,
			handler.NewReviewHandler,
			handler.NewFavoriteHandler,
			handler.NewOfferHandler,
			handler.NewClaimHandler,
			handler.NewUserHandler,
			handler.NewAdminHandler,
			handler.NewNewsletterHandler,
			handler.NewRefdataHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
