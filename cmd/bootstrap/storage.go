package bootstrap

import (
	"context"

	"fieldbook/internal/infra/storage"
	"fieldbook/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewBlobStore,
	),
)

// NewBlobStore opens the driver named by STORAGE_DRIVER and closes it on shutdown.
func NewBlobStore(lc fx.Lifecycle, cfg config.Config) (storage.BlobStore, error) {
	blobs, cleanup, err := storage.Open(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return blobs, nil
}
