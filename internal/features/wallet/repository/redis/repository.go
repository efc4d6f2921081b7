package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lyra-coin-backend/internal/features/wallet/models"
	"lyra-coin-backend/internal/features/wallet/repository"
)

const keyPrefixWallet = "wallet:"

type Repository struct {
	client redis.Cmdable
}

func NewRepository(client redis.Cmdable) repository.Repository {
	return &Repository{client: client}
}

func walletKey(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefixWallet, userID)
}

// Save keeps the connection until the client reports a disconnect.
func (r *Repository) Save(ctx context.Context, conn *models.Connection) error {
	data, err := json.Marshal(conn)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet connection: %w", err)
	}

	if err := r.client.Set(ctx, walletKey(conn.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save wallet connection: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, userID int64) (*models.Connection, error) {
	data, err := r.client.Get(ctx, walletKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotConnected
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet connection: %w", err)
	}

	var conn models.Connection
	if err := json.Unmarshal(data, &conn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet connection: %w", err)
	}
	return &conn, nil
}

func (r *Repository) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, walletKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wallet connection: %w", err)
	}
	return nil
}
