package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	store "lyra-coin-backend/internal/features/appstore/models"
	"lyra-coin-backend/internal/features/appstore/repository"
	"lyra-coin-backend/internal/features/appstore/repository/memory"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/metrics"
)

const installation = "1001"

func newTestController(t *testing.T, opts Options) (*Controller, *appstore.Manager, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	manager := appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop())
	c := NewController(manager, opts, metrics.New(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(c.Stop)
	return c, manager, repo
}

// gatedRepository holds the next Save until released.
type gatedRepository struct {
	*memory.Repository

	mu      sync.Mutex
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepository) holdNextSave() (entered, release chan struct{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entered = make(chan struct{})
	r.release = make(chan struct{})
	return r.entered, r.release
}

func (r *gatedRepository) Save(ctx context.Context, key string, data []byte) error {
	r.mu.Lock()
	entered, release := r.entered, r.release
	r.entered, r.release = nil, nil
	r.mu.Unlock()

	if entered != nil {
		close(entered)
		<-release
	}
	return r.Repository.Save(ctx, key, data)
}

var _ repository.SnapshotRepository = (*gatedRepository)(nil)

func fastOptions() Options {
	return Options{Seconds: 3, Tick: 5 * time.Millisecond}
}

func taskState(t *testing.T, m *appstore.Manager, id string) store.TaskState {
	t.Helper()
	s, err := m.Open(context.Background(), installation)
	require.NoError(t, err)
	snap := s.Snapshot()
	return snap.StateOf(id)
}

func TestController_ListSeedsCatalog(t *testing.T) {
	c, _, _ := newTestController(t, fastOptions())

	resp, err := c.List(context.Background(), installation)
	require.NoError(t, err)

	assert.Equal(t, store.DefaultBalance, resp.Balance)
	require.Len(t, resp.Platforms, 6)
	assert.Equal(t, "Facebook", resp.Platforms[0].Platform)
	assert.Equal(t, "Telegram", resp.Platforms[5].Platform)

	total := 0
	for _, g := range resp.Platforms {
		total += len(g.Tasks)
		for _, task := range g.Tasks {
			assert.Equal(t, store.TaskIdle, task.State)
		}
	}
	assert.Equal(t, 22, total)
}

func TestController_StartCountdownClaim(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, fastOptions())
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	started, err := c.Start(ctx, installation, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, store.TaskCompleting, started.Task.State)
	assert.Equal(t, "https://www.facebook.com/profile.php?id=61575500415354", started.Link)

	require.Eventually(t, func() bool {
		return taskState(t, m, "fb-1") == store.TaskClaimable
	}, time.Second, 5*time.Millisecond)

	s, err := m.Open(ctx, installation)
	require.NoError(t, err)
	snap := s.Snapshot()
	assert.NotContains(t, snap.CompletingTasks, "fb-1")
	assert.Contains(t, snap.ClaimableRewards, "fb-1")

	claimed, err := c.Claim(ctx, installation, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, 10, claimed.Reward)
	assert.Equal(t, 130, claimed.Balance)
	assert.Equal(t, store.TaskCompleted, claimed.Task.State)
	require.NotNil(t, claimed.Task.CompletedAt)

	snap = s.Snapshot()
	assert.NotContains(t, snap.CompletingTasks, "fb-1")
	assert.NotContains(t, snap.ClaimableRewards, "fb-1")
	i, _ := snap.FindTask("fb-1")
	assert.True(t, snap.Tasks[i].Completed)
}

func TestController_StartRejections(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t, Options{Seconds: 1000, Tick: time.Hour})
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	_, err = c.Start(ctx, installation, "missing")
	assert.ErrorIs(t, err, appstore.ErrTaskNotFound)

	_, err = c.Start(ctx, installation, "tt-4")
	require.NoError(t, err)
	assert.Equal(t, 1000, c.Remaining(installation, "tt-4"))

	_, err = c.Start(ctx, installation, "tt-4")
	assert.ErrorIs(t, err, appstore.ErrTaskInFlight)
}

func TestController_ClaimRequiresClaimable(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t, Options{Seconds: 1000, Tick: time.Hour})
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	_, err = c.Claim(ctx, installation, "yt-1")
	assert.ErrorIs(t, err, appstore.ErrNotClaimable)

	_, err = c.Start(ctx, installation, "yt-1")
	require.NoError(t, err)
	_, err = c.Claim(ctx, installation, "yt-1")
	assert.ErrorIs(t, err, appstore.ErrNotClaimable)

	_, err = c.Claim(ctx, installation, "nope")
	assert.ErrorIs(t, err, appstore.ErrTaskNotFound)
}

func TestController_ConcurrentClaimsGrantOnce(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, fastOptions())
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	_, err = c.Start(ctx, installation, "yt-4")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return taskState(t, m, "yt-4") == store.TaskClaimable
	}, time.Second, 5*time.Millisecond)

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Claim(ctx, installation, "yt-4"); err == nil {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), granted.Load())
	s, err := m.Open(ctx, installation)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultBalance+20, s.Snapshot().Balance)

	_, err = c.Start(ctx, installation, "yt-4")
	assert.ErrorIs(t, err, appstore.ErrTaskCompleted)
}

func TestController_CancelReturnsToIdle(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, Options{Seconds: 1000, Tick: time.Hour})
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	_, err = c.Start(ctx, installation, "ig-2")
	require.NoError(t, err)

	view, err := c.Cancel(ctx, installation, "ig-2")
	require.NoError(t, err)
	assert.Equal(t, store.TaskIdle, view.State)
	assert.Equal(t, 0, c.Remaining(installation, "ig-2"))
	assert.Equal(t, store.TaskIdle, taskState(t, m, "ig-2"))

	_, err = c.Start(ctx, installation, "ig-2")
	assert.NoError(t, err)
}

func TestController_CancelKeepsClaimable(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, fastOptions())
	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	_, err = c.Start(ctx, installation, "x-1")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return taskState(t, m, "x-1") == store.TaskClaimable
	}, time.Second, 5*time.Millisecond)

	view, err := c.Cancel(ctx, installation, "x-1")
	require.NoError(t, err)
	assert.Equal(t, store.TaskClaimable, view.State)
}

func TestController_ResumeAfterRestart(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	first := NewController(appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop()), Options{Seconds: 1000, Tick: time.Hour}, metrics.New(zerolog.Nop()), zerolog.Nop())
	_, err := first.List(ctx, installation)
	require.NoError(t, err)
	_, err = first.Start(ctx, installation, "tg-1")
	require.NoError(t, err)
	first.Stop()

	// the persisted completing marker survives the restart
	manager := appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop())
	second := NewController(manager, fastOptions(), metrics.New(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(second.Stop)

	resp, err := second.List(ctx, installation)
	require.NoError(t, err)
	tg := resp.Platforms[5].Tasks[0]
	assert.Equal(t, "tg-1", tg.ID)
	assert.Equal(t, store.TaskCompleting, tg.State)

	require.Eventually(t, func() bool {
		return taskState(t, manager, "tg-1") == store.TaskClaimable
	}, time.Second, 5*time.Millisecond)
}

func TestController_StopCancelsCountdowns(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, Options{Seconds: 1000, Tick: time.Millisecond})
	_, err := c.List(ctx, installation)
	require.NoError(t, err)
	_, err = c.Start(ctx, installation, "fb-2")
	require.NoError(t, err)

	c.Stop()

	assert.Equal(t, 0, c.Remaining(installation, "fb-2"))
	assert.Equal(t, store.TaskCompleting, taskState(t, m, "fb-2"))

	// no countdowns are scheduled after Stop
	_, err = c.Start(ctx, installation, "fb-3")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Remaining(installation, "fb-3"))
}

func TestController_ResumeOnlySchedulesMissingCountdowns(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	first := NewController(appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop()), Options{Seconds: 1000, Tick: time.Hour}, metrics.New(zerolog.Nop()), zerolog.Nop())
	_, err := first.List(ctx, installation)
	require.NoError(t, err)
	_, err = first.Start(ctx, installation, "ig-1")
	require.NoError(t, err)
	first.Stop()

	second := NewController(appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop()), Options{Seconds: 1000, Tick: time.Hour}, metrics.New(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(second.Stop)

	assert.Equal(t, 0, second.Remaining(installation, "ig-1"))
	require.NoError(t, second.Resume(ctx, installation))
	assert.Equal(t, 1000, second.Remaining(installation, "ig-1"))

	// a second resume keeps the running countdown
	require.NoError(t, second.Resume(ctx, installation))
	assert.Equal(t, 1000, second.Remaining(installation, "ig-1"))
	assert.Equal(t, 0, second.Remaining(installation, "ig-2"))
}

func TestController_StartSeedsCatalog(t *testing.T) {
	ctx := context.Background()
	c, m, _ := newTestController(t, fastOptions())

	started, err := c.Start(ctx, installation, "fb-1")
	require.NoError(t, err)
	assert.Equal(t, store.TaskCompleting, started.Task.State)

	s, err := m.Open(ctx, installation)
	require.NoError(t, err)
	assert.Len(t, s.Snapshot().Tasks, 22)

	require.Eventually(t, func() bool {
		return taskState(t, m, "fb-1") == store.TaskClaimable
	}, time.Second, 5*time.Millisecond)
}

func TestController_CancelDuringStartWrite(t *testing.T) {
	ctx := context.Background()
	repo := &gatedRepository{Repository: memory.NewRepository()}
	manager := appstore.NewManager(repo, "lyra-coin-storage", zerolog.Nop())
	c := NewController(manager, Options{Seconds: 2, Tick: 5 * time.Millisecond}, metrics.New(zerolog.Nop()), zerolog.Nop())
	t.Cleanup(c.Stop)

	_, err := c.List(ctx, installation)
	require.NoError(t, err)

	entered, release := repo.holdNextSave()
	startErr := make(chan error, 1)
	go func() {
		_, err := c.Start(ctx, installation, "fb-1")
		startErr <- err
	}()
	<-entered

	cancelErr := make(chan error, 1)
	go func() {
		_, err := c.Cancel(ctx, installation, "fb-1")
		cancelErr <- err
	}()
	// let Cancel queue behind the held write
	time.Sleep(20 * time.Millisecond)
	close(release)

	require.NoError(t, <-startErr)
	require.NoError(t, <-cancelErr)

	assert.Never(t, func() bool {
		return taskState(t, manager, "fb-1") == store.TaskClaimable
	}, 100*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, store.TaskIdle, taskState(t, manager, "fb-1"))
	assert.Equal(t, 0, c.Remaining(installation, "fb-1"))
}
