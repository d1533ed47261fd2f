package storage

import (
	"context"
	"log/slog"

	"enginex/config"
	"enginex/internal/domain/constants"
	"enginex/internal/domain/lifecycle"
	"enginex/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for ImageStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New selects the image store from storage.provider.
func New(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage

	switch cfg.Provider {
	case constants.StorageProviderMinio:
		store, err := NewMinioStore(cfg)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return store.EnsureBucket(ctx)
			},
		})
		params.Logger.Info("Using MinIO image storage",
			slog.String("endpoint", cfg.Minio.Endpoint),
			slog.String("bucket", cfg.Bucket),
		)

		return store, nil

	case constants.StorageProviderBlob:
		if cfg.BlobURL == "" {
			return nil, errors.New("blobUrl is required for blob provider")
		}

		store, err := OpenBlobStore(params.Ctx, cfg.BlobURL, cfg.Bucket, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return store.Close()
			},
		})
		params.Logger.Info("Using blob image storage", slog.String("url", cfg.BlobURL))

		return store, nil

	default:
		return nil, errors.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

// Module provides the image storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
