package service

import (
	"context"
	"io"
)

// PhotoStorage stores venue photo binaries in a blob bucket.
type PhotoStorage interface {
	// Upload writes the blob under key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)

	// Remove deletes the blob. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
