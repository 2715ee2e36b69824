package storage

import (
	"context"
	"fmt"

	appinv "github.com/erp/ledger/internal/application/invoicing"
	"github.com/erp/ledger/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewArtifactStore returns the store selected by cfg.Driver. The s3 driver
// creates its bucket when ensureBucket is set.
func NewArtifactStore(ctx context.Context, cfg config.StorageConfig, ensureBucket bool, logger *zap.Logger) (appinv.ArtifactStore, error) {
	switch cfg.Driver {
	case "", "stub":
		logger.Info("Using stub artifact store", zap.String("base_url", cfg.StubBaseURL))
		return NewStubArtifactStore(cfg.StubBaseURL), nil
	case "s3":
		store, err := NewS3ArtifactStore(ctx, cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if ensureBucket {
			if err := store.EnsureBucket(ctx); err != nil {
				return nil, err
			}
		}
		logger.Info("Using S3 artifact store",
			zap.String("bucket", cfg.Bucket),
			zap.String("endpoint", cfg.Endpoint),
		)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
