// Command sitemap renders sitemap.xml for the public site and exits.
// It is meant to run on a schedule next to the HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"

	"playfinder/config"
	logs "playfinder/internal/infra/log"
	"playfinder/internal/infra/persistence/postgres"
	"playfinder/internal/sitemap"

	"go.uber.org/fx"
)

const defaultOutputPath = "sitemap.xml"

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewVenueRepository,
			sitemap.NewGenerator,
		),
		fx.Invoke(run),
	).Run()
}

func run(ctx context.Context, cfg *config.Config, generator *sitemap.Generator, logger *slog.Logger, shutdowner fx.Shutdowner) {
	go func() {
		outputPath := defaultOutputPath
		if cfg.Sitemap != nil && cfg.Sitemap.OutputPath != "" {
			outputPath = cfg.Sitemap.OutputPath
		}

		if err := generator.WriteFile(ctx, outputPath); err != nil {
			logger.Error("Sitemap generation failed", slog.Any("error", err))

			if shutdownErr := shutdowner.Shutdown(); shutdownErr != nil {
				logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}

			return
		}

		logger.Info("Sitemap written", slog.String("path", outputPath))

		if err := shutdowner.Shutdown(); err != nil {
			logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
			os.Exit(1)
		}
	}()
}
