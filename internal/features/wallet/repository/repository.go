package repository

import (
	"context"
	"errors"

	"lyra-coin-backend/internal/features/wallet/models"
)

var ErrNotConnected = errors.New("wallet not connected")

type Repository interface {
	Save(ctx context.Context, conn *models.Connection) error
	// Get returns ErrNotConnected when no wallet is stored for the user
	Get(ctx context.Context, userID int64) (*models.Connection, error)
	Delete(ctx context.Context, userID int64) error
}
