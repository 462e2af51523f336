// Package geoip resolves an approximate caller position from an external IP
// geolocation endpoint. Accuracy is city level at best, which is enough to
// seed the nearby-venues search.
package geoip

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"playfinder/config"
	"playfinder/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

type httpLocator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// lookupResponse is the subset of the provider payload we read.
type lookupResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	AccuracyM float64 `json:"accuracy"`
}

// NewLocator builds a Locator against the configured endpoint. When no
// endpoint is configured every lookup fails with ErrLocationUnsupported,
// mirroring a device without location support.
func NewLocator(cfg *config.Config, logger *slog.Logger) service.Locator {
	var endpoint string
	timeout := defaultTimeout
	if cfg.Geolocation != nil {
		endpoint = cfg.Geolocation.Endpoint
		if cfg.Geolocation.Timeout > 0 {
			timeout = cfg.Geolocation.Timeout
		}
	}

	return &httpLocator{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// CurrentPosition performs a single position lookup. Results are never cached.
func (l *httpLocator) CurrentPosition(ctx context.Context) (*service.Position, error) {
	if l.endpoint == "" {
		return nil, service.ErrLocationUnsupported
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "position lookup failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("position lookup returned status %d", resp.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode position payload")
	}

	l.logger.Debug("Resolved caller position",
		slog.Float64("lat", payload.Latitude),
		slog.Float64("lon", payload.Longitude),
	)

	return &service.Position{
		Point:     orb.Point{payload.Longitude, payload.Latitude},
		AccuracyM: payload.AccuracyM,
	}, nil
}
