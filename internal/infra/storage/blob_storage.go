// Package storage stores venue photos in a blob bucket behind the portable
// gocloud.dev API, so local disk and GCS buckets are interchangeable.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"playfinder/config"
	"playfinder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver, used in tests
	"gocloud.dev/gcerrors"
)

type blobPhotoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for PhotoStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStorage opens the configured bucket and registers its shutdown hook.
func NewPhotoStorage(params Params) (service.PhotoStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing photo storage bucket")

			return bucket.Close()
		},
	})

	return &blobPhotoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the blob under key and returns its public URL.
func (s *blobPhotoStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrapf(err, "write blob %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "close writer for %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// Remove deletes the blob. A missing key is tolerated so removal is idempotent.
func (s *blobPhotoStorage) Remove(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete blob %s", key)
	}

	return nil
}
