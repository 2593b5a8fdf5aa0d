package storage

import (
	"context"
	"fmt"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/config"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"
)

// FromConfig builds the fixture source for the configured catalog driver.
// The embedded driver returns nil: the catalog falls back to its built-in
// fixtures.
func FromConfig(ctx context.Context, cfg config.CatalogConfig) (catalog.Source, error) {
	switch cfg.Driver {
	case "", "embedded":
		return nil, nil
	case "local":
		return NewLocal(cfg.LocalPath), nil
	case "s3":
		return NewS3(ctx, S3Config{
			Region: cfg.S3Region,
			Bucket: cfg.S3Bucket,
			Key:    cfg.S3Key,
		})
	default:
		return nil, fmt.Errorf("unknown catalog driver: %s", cfg.Driver)
	}
}
