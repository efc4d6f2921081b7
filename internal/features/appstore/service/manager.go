package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lyra-coin-backend/internal/features/appstore/repository"
)

// Manager opens one Store per installation and keeps it for the process lifetime.
type Manager struct {
	repo      repository.SnapshotRepository
	namespace string
	logger    zerolog.Logger
	now       func() time.Time

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(repo repository.SnapshotRepository, namespace string, logger zerolog.Logger) *Manager {
	return &Manager{
		repo:      repo,
		namespace: namespace,
		logger:    logger,
		now:       time.Now,
		stores:    make(map[string]*Store),
	}
}

// WithClock replaces the clock used for completion timestamps.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Key returns the durable key for an installation.
func (m *Manager) Key(installationID string) string {
	return m.namespace + ":" + installationID
}

// Open returns the store of installationID, rehydrating it from durable
// storage on first use. Missing snapshots start from defaults.
func (m *Manager) Open(ctx context.Context, installationID string) (*Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.stores[installationID]; ok {
		return s, nil
	}

	key := m.Key(installationID)
	state, found, err := loadState(ctx, m.repo, key)
	if err != nil {
		return nil, err
	}

	m.logger.Debug().
		Str("key", key).
		Bool("rehydrated", found).
		Int("balance", state.Balance).
		Msg("Store opened")

	s := newStore(key, m.repo, state, m.logger, m.now)
	m.stores[installationID] = s
	return s, nil
}
