package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyra-coin-backend/internal/features/appstore/repository"
)

func TestSnapshotRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewSnapshotRepository(client)
	ctx := context.Background()

	_, err := repo.Load(ctx, "lyra-coin-storage:1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	blob := []byte(`{"state":{"balance":120},"version":0}`)
	require.NoError(t, repo.Save(ctx, "lyra-coin-storage:1", blob))

	got, err := repo.Load(ctx, "lyra-coin-storage:1")
	require.NoError(t, err)
	assert.Equal(t, blob, got)
	assert.Zero(t, mr.TTL("lyra-coin-storage:1"))

	mr.Close()
	_, err = repo.Load(ctx, "lyra-coin-storage:1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
