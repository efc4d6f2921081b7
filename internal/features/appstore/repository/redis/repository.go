package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lyra-coin-backend/internal/features/appstore/repository"
)

type snapshotRepository struct {
	client redis.Cmdable
}

func NewSnapshotRepository(client redis.Cmdable) repository.SnapshotRepository {
	return &snapshotRepository{client: client}
}

func (r *snapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}
	return data, nil
}

// Save writes without expiration: the snapshot lives until the storage is cleared.
func (r *snapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}
