package geoip

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"playfinder/config"
	"playfinder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestLocator_UnsupportedWhenUnconfigured(t *testing.T) {
	locator := NewLocator(&config.Config{}, discardLogger())

	pos, err := locator.CurrentPosition(context.Background())
	assert.Nil(t, pos)
	assert.ErrorIs(t, err, service.ErrLocationUnsupported)
}

func TestLocator_ResolvesPosition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"latitude":-33.8688,"longitude":151.2093,"accuracy":2500}`))
	}))
	defer srv.Close()

	cfg := &config.Config{Geolocation: &config.GeolocationConfig{Endpoint: srv.URL, Timeout: time.Second}}
	locator := NewLocator(cfg, discardLogger())

	pos, err := locator.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, -33.8688, pos.Point.Lat(), 1e-9)
	assert.InDelta(t, 151.2093, pos.Point.Lon(), 1e-9)
	assert.Equal(t, 2500.0, pos.AccuracyM)
}

func TestLocator_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := &config.Config{Geolocation: &config.GeolocationConfig{Endpoint: srv.URL}}
	locator := NewLocator(cfg, discardLogger())

	_, err := locator.CurrentPosition(context.Background())
	assert.Error(t, err)
}
