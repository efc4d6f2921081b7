package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	store "lyra-coin-backend/internal/features/appstore/models"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	"lyra-coin-backend/internal/features/tasks/models"
	"lyra-coin-backend/internal/metrics"
)

// StoreOpener hands out the store of an installation.
type StoreOpener interface {
	Open(ctx context.Context, installationID string) (*appstore.Store, error)
}

type Options struct {
	// Seconds is the countdown length in ticks
	Seconds int
	Tick    time.Duration
}

type countdownKey struct {
	installationID string
	taskID         string
}

type countdown struct {
	cancel    context.CancelFunc
	remaining atomic.Int32
	done      chan struct{}
}

// Controller drives tasks through idle, completing, claimable and completed.
// Countdowns live only in memory; the completing and claimable sets in the
// store are the durable markers.
type Controller struct {
	stores  StoreOpener
	opts    Options
	metrics *metrics.Metrics
	logger  zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	countdowns map[countdownKey]*countdown
}

func NewController(stores StoreOpener, opts Options, m *metrics.Metrics, logger zerolog.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		stores:     stores,
		opts:       opts,
		metrics:    m,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		countdowns: make(map[countdownKey]*countdown),
	}
}

// List seeds the catalog on first use, resumes orphaned countdowns and
// returns the tasks grouped by platform.
func (c *Controller) List(ctx context.Context, installationID string) (*models.ListResponse, error) {
	s, err := c.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	if len(s.Snapshot().Tasks) == 0 {
		if _, err := s.InitializeTasks(ctx); err != nil {
			return nil, err
		}
	}

	c.resume(installationID, s)

	state := s.Snapshot()
	resp := &models.ListResponse{
		Balance:          state.Balance,
		CompletedRewards: state.CompletedRewards(),
		Platforms:        make([]models.PlatformGroup, 0, len(store.Platforms())),
	}
	for _, p := range store.Platforms() {
		info := p.Info()
		group := models.PlatformGroup{
			Platform: info.Name,
			Link:     info.Link,
			Color:    info.Color,
			Icon:     info.Icon,
			Tasks:    []models.TaskView{},
		}
		for _, t := range state.Tasks {
			if t.Platform == p {
				group.Tasks = append(group.Tasks, c.view(installationID, &state, t))
			}
		}
		resp.Platforms = append(resp.Platforms, group)
	}
	return resp, nil
}

// Start moves an idle task to completing and schedules its countdown, seeding
// the catalog first on a fresh installation. The returned link is for the
// client to open; nothing verifies the action.
func (c *Controller) Start(ctx context.Context, installationID, taskID string) (*models.StartResponse, error) {
	s, err := c.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	state, err := s.Apply(ctx, appstore.Chain(
		appstore.InitializeTasks(),
		appstore.SetCompletingTask(taskID, true),
	))
	if err != nil {
		return nil, err
	}

	c.schedule(installationID, s, taskID)

	i, _ := state.FindTask(taskID)
	task := state.Tasks[i]
	c.metrics.RecordTaskStarted(task.Platform.String())

	c.logger.Info().
		Str("installation_id", installationID).
		Str("task_id", taskID).
		Msg("Task countdown started")

	return &models.StartResponse{
		Task: c.view(installationID, &state, task),
		Link: task.Platform.Link(),
	}, nil
}

// Claim completes a claimable task and credits its reward in one store
// update. Concurrent claims for the same task grant the reward once.
func (c *Controller) Claim(ctx context.Context, installationID, taskID string) (*models.ClaimResponse, error) {
	s, err := c.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	var reward int
	state, err := s.Apply(ctx, func(st *store.State) error {
		i, ok := st.FindTask(taskID)
		if !ok {
			return appstore.ErrTaskNotFound
		}
		if st.Tasks[i].Completed {
			return appstore.ErrTaskCompleted
		}
		if !st.IsClaimable(taskID) {
			return appstore.ErrNotClaimable
		}
		reward = st.Tasks[i].Reward
		return appstore.Chain(
			appstore.CompleteTask(taskID, s.Now()),
			appstore.AddBalance(reward),
		)(st)
	})
	if err != nil {
		return nil, err
	}

	i, _ := state.FindTask(taskID)
	task := state.Tasks[i]
	c.metrics.RecordTaskClaimed(task.Platform.String(), reward)

	c.logger.Info().
		Str("installation_id", installationID).
		Str("task_id", taskID).
		Int("reward", reward).
		Int("balance", state.Balance).
		Msg("Reward claimed")

	return &models.ClaimResponse{
		Task:    c.view(installationID, &state, task),
		Reward:  reward,
		Balance: state.Balance,
	}, nil
}

// Cancel stops the countdown of one task and returns it to idle. A task that
// already became claimable stays claimable.
func (c *Controller) Cancel(ctx context.Context, installationID, taskID string) (*models.TaskView, error) {
	key := countdownKey{installationID: installationID, taskID: taskID}
	c.stop(key)

	s, err := c.stores.Open(ctx, installationID)
	if err != nil {
		return nil, err
	}

	state, err := s.SetCompletingTask(ctx, taskID, false)
	if err != nil {
		return nil, err
	}
	// a concurrent Start may have scheduled between the first stop and the write
	c.stop(key)
	i, ok := state.FindTask(taskID)
	if !ok {
		return nil, appstore.ErrTaskNotFound
	}

	view := c.view(installationID, &state, state.Tasks[i])
	return &view, nil
}

// Remaining returns the seconds left on a live countdown, or 0.
func (c *Controller) Remaining(installationID, taskID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cd, ok := c.countdowns[countdownKey{installationID: installationID, taskID: taskID}]; ok {
		return int(cd.remaining.Load())
	}
	return 0
}

// Stop cancels every countdown and waits for them to exit. Completing
// markers stay persisted so countdowns restart on the next List.
func (c *Controller) Stop() {
	c.cancel()
	c.wg.Wait()
	c.logger.Info().Msg("Task controller stopped")
}

// Resume gives every persisted completing task of the installation without a
// live countdown a fresh full countdown. List calls it on every read.
func (c *Controller) Resume(ctx context.Context, installationID string) error {
	s, err := c.stores.Open(ctx, installationID)
	if err != nil {
		return err
	}
	c.resume(installationID, s)
	return nil
}

func (c *Controller) resume(installationID string, s *appstore.Store) {
	for _, id := range s.Snapshot().CompletingTasks {
		if c.schedule(installationID, s, id) {
			c.logger.Debug().
				Str("installation_id", installationID).
				Str("task_id", id).
				Msg("Countdown resumed")
		}
	}
}

func (c *Controller) schedule(installationID string, s *appstore.Store, taskID string) bool {
	key := countdownKey{installationID: installationID, taskID: taskID}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.countdowns[key]; ok {
		return false
	}
	if c.ctx.Err() != nil {
		return false
	}
	if snap := s.Snapshot(); !snap.IsCompleting(taskID) {
		return false
	}

	ctx, cancel := context.WithCancel(c.ctx)
	cd := &countdown{cancel: cancel, done: make(chan struct{})}
	cd.remaining.Store(int32(c.opts.Seconds))
	c.countdowns[key] = cd

	c.wg.Add(1)
	go c.run(ctx, key, cd, s)
	return true
}

func (c *Controller) run(ctx context.Context, key countdownKey, cd *countdown, s *appstore.Store) {
	defer c.wg.Done()
	defer close(cd.done)
	defer c.metrics.RecordCountdownDone()
	defer c.forget(key, cd)
	defer cd.cancel()

	ticker := time.NewTicker(c.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if cd.remaining.Add(-1) > 0 {
				continue
			}
			if _, err := s.SetClaimableReward(ctx, key.taskID); err != nil {
				if errors.Is(err, appstore.ErrNotCompleting) {
					c.logger.Debug().
						Str("installation_id", key.installationID).
						Str("task_id", key.taskID).
						Msg("Countdown expired after cancel")
					return
				}
				c.logger.Error().
					Err(err).
					Str("installation_id", key.installationID).
					Str("task_id", key.taskID).
					Msg("Failed to mark reward claimable")
				return
			}
			c.logger.Debug().
				Str("installation_id", key.installationID).
				Str("task_id", key.taskID).
				Msg("Reward claimable")
			return
		}
	}
}

// stop cancels the countdown of key, if any, and waits for it to exit.
func (c *Controller) stop(key countdownKey) {
	c.mu.Lock()
	cd := c.countdowns[key]
	delete(c.countdowns, key)
	c.mu.Unlock()

	if cd != nil {
		cd.cancel()
		<-cd.done
	}
}

func (c *Controller) forget(key countdownKey, cd *countdown) {
	c.mu.Lock()
	if c.countdowns[key] == cd {
		delete(c.countdowns, key)
	}
	c.mu.Unlock()
}

func (c *Controller) view(installationID string, state *store.State, t store.Task) models.TaskView {
	st := state.StateOf(t.ID)
	remaining := 0
	if st == store.TaskCompleting {
		remaining = c.Remaining(installationID, t.ID)
	}
	return models.NewTaskView(t, st, remaining)
}
