package storage_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"tourcms/internal/api/controllers"
	"tourcms/internal/config"
	"tourcms/internal/services"
	"tourcms/internal/storage"
)

var Module = fx.Provide(provideUploadsController)

// provideUploadsController returns nil when no bucket is configured, which
// leaves the upload routes unregistered.
func provideUploadsController(cfg *config.Config, log *zap.Logger) (*controllers.UploadsController, error) {
	if !cfg.Storage.Enabled() {
		log.Info("object storage not configured, uploads disabled")
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.NewMinIOStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, err
	}
	return controllers.NewUploadsController(services.NewUploadService(store, log)), nil
}
