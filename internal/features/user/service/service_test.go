package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"lyra-coin-backend/internal/features/appstore/repository/memory"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	userredis "lyra-coin-backend/internal/features/user/repository/redis"
)

func newTestService(t *testing.T) (*Service, *miniredis.Miniredis, *appstore.Manager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	manager := appstore.NewManager(memory.NewRepository(), "lyra-coin-storage", zerolog.Nop())
	return NewService(userredis.NewUserRepository(client), manager, zerolog.Nop()), mr, manager
}

var ada = initdata.User{ID: 77, Username: "ada", FirstName: "Ada", LastName: "Lovelace"}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, LevelFor(120).Number)
	assert.Equal(t, 1, LevelFor(199).Number)
	assert.Equal(t, 2, LevelFor(200).Number)
	assert.Equal(t, "intermediate", LevelFor(499).Name)
	assert.Equal(t, 3, LevelFor(500).Number)
	assert.Equal(t, "levelAdvanced", LevelFor(10_000).TranslationKey)
}

func TestService_Bootstrap(t *testing.T) {
	ctx := context.Background()
	svc, mr, manager := newTestService(t)

	require.NoError(t, svc.Bootstrap(ctx, ada))
	assert.True(t, mr.Exists("user:77"))

	st, err := manager.Open(ctx, "77")
	require.NoError(t, err)
	snap := st.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, "77", snap.User.ID)
	assert.Equal(t, "Ada Lovelace", snap.User.FullName)

	// a later sync never overwrites the edited name
	_, err = st.UpdateFullName(ctx, "Countess")
	require.NoError(t, err)
	require.NoError(t, svc.Bootstrap(ctx, ada))
	assert.Equal(t, "Countess", st.Snapshot().User.FullName)
}

func TestService_BootstrapDegraded(t *testing.T) {
	ctx := context.Background()
	svc, mr, manager := newTestService(t)
	mr.Close()

	err := svc.Bootstrap(ctx, ada)
	require.Error(t, err)

	// the local store is still usable
	st, err := manager.Open(ctx, "77")
	require.NoError(t, err)
	assert.NotNil(t, st.Snapshot().User)

	profile, err := svc.Profile(ctx, ada, errors.New("upsert failed"))
	require.NoError(t, err)
	assert.Equal(t, "upsert failed", profile.AuthError)
}

func TestService_GetOrCreateUserUpdatesChanges(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	created, err := svc.GetOrCreateUser(ctx, ada)
	require.NoError(t, err)
	assert.Equal(t, "ada", created.Username)

	renamed := ada
	renamed.Username = "ada_l"
	updated, err := svc.GetOrCreateUser(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, "ada_l", updated.Username)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestService_ProfileAndName(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.Bootstrap(ctx, ada))

	profile, err := svc.Profile(ctx, ada, nil)
	require.NoError(t, err)
	assert.Equal(t, 120, profile.Balance)
	assert.Equal(t, 1, profile.Level.Number)
	assert.Equal(t, "Ada Lovelace", profile.DisplayName)
	assert.Empty(t, profile.AuthError)

	_, err = svc.UpdateFullName(ctx, ada, "   ")
	assert.ErrorIs(t, err, appstore.ErrEmptyValue)

	profile, err = svc.UpdateFullName(ctx, ada, " Augusta Ada ")
	require.NoError(t, err)
	assert.Equal(t, "Augusta Ada", profile.FullName)

	balance, err := svc.Balance(ctx, "77")
	require.NoError(t, err)
	assert.Equal(t, 120, balance)
}
