// Package storage provides catalog fixture sources: a local file for dev
// and an S3 object for deployments that manage the catalog out of band.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

type Local struct {
	Path string
}

func NewLocal(path string) *Local { return &Local{Path: path} }

func (l *Local) Fetch(ctx context.Context) (io.ReadCloser, error) {
	_ = ctx
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open fixture file: %w", err)
	}
	return f, nil
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.Path) }
