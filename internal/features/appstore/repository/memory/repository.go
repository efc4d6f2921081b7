package memory

import (
	"context"
	"sync"

	"lyra-coin-backend/internal/features/appstore/repository"
)

// Repository keeps snapshots in process memory. Used with STORE_BACKEND=memory
// and in tests.
type Repository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
	// saveErr makes every Save fail while set
	saveErr error
}

func NewRepository() *Repository {
	return &Repository{blobs: make(map[string][]byte)}
}

func (r *Repository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.blobs[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (r *Repository) Save(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}
	r.blobs[key] = append([]byte(nil), data...)
	return nil
}

// SetSaveError makes subsequent saves fail with err; nil restores normal behaviour.
func (r *Repository) SetSaveError(err error) {
	r.mu.Lock()
	r.saveErr = err
	r.mu.Unlock()
}

var _ repository.SnapshotRepository = (*Repository)(nil)
