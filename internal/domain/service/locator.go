package service

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrLocationUnsupported is returned when no position provider is configured.
var ErrLocationUnsupported = errors.New("geolocation is not supported")

// Position is a one-shot device position fix.
type Position struct {
	Point     orb.Point // lon/lat order, per orb convention.
	AccuracyM float64   // Estimated accuracy radius in metres.
}

// Locator resolves the caller's current position once per call. Lookups are
// never cached and are bounded by the provider's configured timeout.
type Locator interface {
	CurrentPosition(ctx context.Context) (*Position, error)
}
