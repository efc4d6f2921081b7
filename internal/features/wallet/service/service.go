package service

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"github.com/xssnick/tonutils-go/tlb"

	"lyra-coin-backend/internal/features/wallet/models"
	"lyra-coin-backend/internal/features/wallet/repository"
	"lyra-coin-backend/internal/metrics"
)

type BalanceReader interface {
	BalanceNano(ctx context.Context, address string) (*big.Int, error)
}

// Service records the wallet status the client observes. The connect
// protocol itself stays in the client library.
type Service struct {
	repo     repository.Repository
	balances BalanceReader
	manifest models.Manifest
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	now      func() time.Time
}

func NewService(repo repository.Repository, balances BalanceReader, manifest models.Manifest, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		balances: balances,
		manifest: manifest,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *Service) Connect(ctx context.Context, userID int64, req models.ConnectRequest) (*models.Status, error) {
	addr, err := ParseAddress(req.Address)
	if err != nil {
		return nil, err
	}
	network, err := NormalizeNetwork(req.Network)
	if err != nil {
		return nil, err
	}
	addr.SetTestnetOnly(network == NetworkTestnet)

	conn := &models.Connection{
		UserID:      userID,
		Address:     addr.String(),
		RawAddress:  addr.StringRaw(),
		Network:     network,
		ConnectedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, conn); err != nil {
		return nil, err
	}
	s.metrics.RecordWalletEvent("connect")

	s.logger.Info().
		Int64("user_id", userID).
		Str("address", conn.Address).
		Str("network", network).
		Msg("Wallet connected")

	return statusOf(conn), nil
}

func (s *Service) Disconnect(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}
	s.metrics.RecordWalletEvent("disconnect")
	s.logger.Info().Int64("user_id", userID).Msg("Wallet disconnected")
	return nil
}

func (s *Service) Status(ctx context.Context, userID int64) (*models.Status, error) {
	conn, err := s.repo.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotConnected) {
		return &models.Status{Connected: false}, nil
	}
	if err != nil {
		return nil, err
	}
	return statusOf(conn), nil
}

// Connected reports whether the user has a wallet connected.
func (s *Service) Connected(ctx context.Context, userID int64) (bool, error) {
	st, err := s.Status(ctx, userID)
	if err != nil {
		return false, err
	}
	return st.Connected, nil
}

// Balance reads the on-chain TON balance of the connected wallet.
func (s *Service) Balance(ctx context.Context, userID int64) (*models.BalanceResponse, error) {
	conn, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	nano, err := s.balances.BalanceNano(ctx, conn.RawAddress)
	if err != nil {
		return nil, err
	}

	return &models.BalanceResponse{
		Address: conn.Address,
		Nano:    nano.String(),
		TON:     tlb.FromNanoTON(nano).String(),
	}, nil
}

func (s *Service) Manifest() models.Manifest {
	return s.manifest
}

func statusOf(conn *models.Connection) *models.Status {
	at := conn.ConnectedAt
	return &models.Status{
		Connected:   true,
		Address:     conn.Address,
		RawAddress:  conn.RawAddress,
		Network:     conn.Network,
		ConnectedAt: &at,
	}
}
