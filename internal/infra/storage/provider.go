// Package storage provides the object store backends for finalized image assets.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publicURL joins base, bucket and the escaped object name
func publicURL(base, bucket, name string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(name)
}

// ObjectStoreParams holds dependencies for ObjectStore, injected by Fx
type ObjectStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStore creates the configured ObjectStore wrapped with the retry policy
func NewObjectStore(params ObjectStoreParams) (service.ObjectStore, error) {
	cfg := params.Config.ObjectStore
	if cfg == nil {
		return nil, errors.New("objectStore configuration is required")
	}
	logger := params.Logger.With(slog.String("component", "object_store"))

	var store service.ObjectStore

	switch cfg.Provider {
	case config.ObjectStoreProviderS3, "":
		s3Store, err := NewS3Store(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using S3 object store",
			slog.String("endpoint", cfg.Endpoint),
			slog.String("region", cfg.Region),
		)

		store = s3Store

	case config.ObjectStoreProviderBlob:
		blobStore, err := NewBlobStore(params.Ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using blob object store", slog.String("url", cfg.BlobURL))

		store = blobStore

	default:
		return nil, errors.Errorf("unknown object store provider: %s", cfg.Provider)
	}

	if closer, ok := store.(io.Closer); ok {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing object store")

				return closer.Close()
			},
		})
	}

	return WithRetry(store, retry.NewPolicy(params.Config.Retry), logger), nil
}

// Module provides the object store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStore),
)
