package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing was persisted under the key yet.
var ErrNotFound = errors.New("snapshot not found")

// SnapshotRepository stores opaque serialized snapshots under a fixed key.
type SnapshotRepository interface {
	// Load returns the blob stored under key or ErrNotFound
	Load(ctx context.Context, key string) ([]byte, error)
	// Save overwrites the blob stored under key
	Save(ctx context.Context, key string, data []byte) error
}
