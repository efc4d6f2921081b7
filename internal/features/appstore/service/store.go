package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lyra-coin-backend/internal/features/appstore/models"
	"lyra-coin-backend/internal/features/appstore/repository"
)

// Store owns the state of one installation. Every mutation is applied to a
// copy, persisted as a full snapshot, and only then made visible.
type Store struct {
	key    string
	repo   repository.SnapshotRepository
	logger zerolog.Logger
	now    func() time.Time

	mu    sync.Mutex
	state models.State
}

func newStore(key string, repo repository.SnapshotRepository, state models.State, logger zerolog.Logger, now func() time.Time) *Store {
	state.Normalize()
	return &Store{
		key:    key,
		repo:   repo,
		logger: logger,
		now:    now,
		state:  state,
	}
}

// Key is the durable storage key of this store.
func (s *Store) Key() string {
	return s.key
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Apply runs m against a working copy and persists the result. On any error
// the visible state is unchanged.
func (s *Store) Apply(ctx context.Context, m Mutation) (models.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := m(&next); err != nil {
		return s.state.Clone(), err
	}
	next.Normalize()

	if err := s.persist(ctx, next); err != nil {
		s.logger.Error().Err(err).Str("key", s.key).Msg("Failed to persist snapshot")
		return s.state.Clone(), err
	}

	s.state = next
	return next.Clone(), nil
}

func (s *Store) persist(ctx context.Context, state models.State) error {
	data, err := json.Marshal(models.Envelope{State: state, Version: models.SnapshotVersion})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return s.repo.Save(ctx, s.key, data)
}

func (s *Store) SetUser(ctx context.Context, user models.User) (models.State, error) {
	return s.Apply(ctx, SetUser(user))
}

func (s *Store) SetBalance(ctx context.Context, balance int) (models.State, error) {
	return s.Apply(ctx, SetBalance(balance))
}

func (s *Store) AddBalance(ctx context.Context, amount int) (models.State, error) {
	return s.Apply(ctx, AddBalance(amount))
}

func (s *Store) CompleteTask(ctx context.Context, taskID string) (models.State, error) {
	return s.Apply(ctx, CompleteTask(taskID, s.now()))
}

func (s *Store) SetCompletingTask(ctx context.Context, taskID string, completing bool) (models.State, error) {
	return s.Apply(ctx, SetCompletingTask(taskID, completing))
}

func (s *Store) SetClaimableReward(ctx context.Context, taskID string) (models.State, error) {
	return s.Apply(ctx, SetClaimableReward(taskID))
}

func (s *Store) ClearClaimableReward(ctx context.Context, taskID string) (models.State, error) {
	return s.Apply(ctx, ClearClaimableReward(taskID))
}

func (s *Store) SetReferralCode(ctx context.Context, code string) (models.State, error) {
	return s.Apply(ctx, SetReferralCode(code))
}

func (s *Store) SetSubmittedReferralCode(ctx context.Context, code string) (models.State, error) {
	return s.Apply(ctx, SetSubmittedReferralCode(code))
}

func (s *Store) UpdateFullName(ctx context.Context, name string) (models.State, error) {
	return s.Apply(ctx, UpdateFullName(name))
}

func (s *Store) InitializeTasks(ctx context.Context) (models.State, error) {
	return s.Apply(ctx, InitializeTasks())
}

// Now is the clock used for completion timestamps.
func (s *Store) Now() time.Time {
	return s.now()
}

func decodeSnapshot(data []byte) (models.State, error) {
	var env models.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return models.State{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if env.State.Balance < 0 {
		return models.State{}, fmt.Errorf("%w: negative balance %d", ErrCorruptSnapshot, env.State.Balance)
	}
	env.State.Normalize()
	return env.State, nil
}

func loadState(ctx context.Context, repo repository.SnapshotRepository, key string) (models.State, bool, error) {
	data, err := repo.Load(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return models.DefaultState(), false, nil
	}
	if err != nil {
		return models.State{}, false, err
	}
	state, err := decodeSnapshot(data)
	if err != nil {
		return models.State{}, false, err
	}
	return state, true, nil
}
