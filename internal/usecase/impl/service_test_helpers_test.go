package impl

import (
	"io"
	"log/slog"

	"playfinder/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MinPasswordLength: 8,
		},
		Search: &config.SearchConfig{
			NearbyRadiusKm: 10,
		},
	}
}
