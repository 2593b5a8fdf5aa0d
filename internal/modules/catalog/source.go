package catalog

import (
	"context"
	"io"
)

// Source supplies the raw fixture document the catalog is built from.
// Implementations live in internal/storage (local file, S3 object).
type Source interface {
	Fetch(ctx context.Context) (io.ReadCloser, error)
}
