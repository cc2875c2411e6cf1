package app

import (
	"context"
	"fmt"

	"github.com/wpmvc/helpers/internal/config"
	"github.com/wpmvc/helpers/internal/library"
	"github.com/wpmvc/helpers/internal/library/storage"
	"github.com/wpmvc/helpers/internal/library/store"
	"github.com/wpmvc/helpers/internal/logger"
)

// openLibrary wires the attachment store and the configured storage backend
// into a media library. The returned closer releases the database handle.
func openLibrary(ctx context.Context, cfg *config.Config) (*library.Library, func(), error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open attachment database: %w", err)
	}

	closeDB := func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Warnf(ctx, "Failed to close attachment database: %v", closeErr)
		}
	}

	files, err := newStorageBackend(ctx, cfg)
	if err != nil {
		closeDB()
		return nil, nil, err
	}

	return library.NewLibrary(cfg, store.New(db), files), closeDB, nil
}

// newStorageBackend builds the storage backend the configuration selects.
func newStorageBackend(ctx context.Context, cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendS3:
		s3Backend, err := storage.NewS3(ctx, cfg.S3, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 storage: %w", err)
		}

		return s3Backend, nil
	default:
		localBackend, err := storage.NewLocal(cfg.UploadsPath, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}

		return localBackend, nil
	}
}
