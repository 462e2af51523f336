// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker loop) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
