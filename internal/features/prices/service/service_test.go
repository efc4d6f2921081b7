package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lyra-coin-backend/internal/common/cache"
	"lyra-coin-backend/internal/metrics"
)

const marketsBody = `[
  {"id":"bitcoin","name":"Bitcoin","symbol":"btc","current_price":45210.7,"price_change_percentage_24h":1.5,"market_cap":1200000000000,"image":"https://img/btc.png"},
  {"id":"tiny","name":"Tiny","symbol":"tny","current_price":0.0000034,"price_change_percentage_24h":-3.2,"market_cap":2500000000,"image":"https://img/tny.png"}
]`

type upstream struct {
	server *httptest.Server
	fail   atomic.Bool
	hits   atomic.Int32
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.hits.Add(1)
		if u.fail.Load() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		assert.Equal(t, "/coins/markets", r.URL.Path)
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(marketsBody))
	}))
	t.Cleanup(u.server.Close)
	return u
}

func newTestService(t *testing.T, baseURL string, mr *miniredis.Miniredis) *Service {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(
		NewClient(baseURL, time.Second),
		cache.NewCacheService(client),
		10*time.Millisecond,
		metrics.New(zerolog.Nop()),
		zerolog.Nop(),
	)
}

func TestService_RefreshSuccessWritesCache(t *testing.T) {
	up := newUpstream(t)
	mr := miniredis.RunT(t)
	svc := newTestService(t, up.server.URL, mr)

	require.NoError(t, svc.Refresh(context.Background()))

	view := svc.View()
	require.Len(t, view.Coins, 2)
	assert.Empty(t, view.Error)
	assert.False(t, view.ShowingCached)
	require.NotNil(t, view.LastUpdated)

	btc := view.Coins[0]
	assert.Equal(t, "$45,210.7", btc.Price)
	assert.Equal(t, "$1.20T", btc.MarketCapFm)
	assert.Equal(t, "1.50%", btc.Change24h)
	assert.Equal(t, "up", btc.Trend)

	tiny := view.Coins[1]
	assert.Equal(t, "$0.000003", tiny.Price)
	assert.Equal(t, "$2.50B", tiny.MarketCapFm)
	assert.Equal(t, "down", tiny.Trend)

	assert.True(t, mr.Exists(CacheKeyCoins))
	assert.True(t, mr.Exists(CacheKeyTimestamp))
}

func TestService_FailureKeepsPreviousData(t *testing.T) {
	up := newUpstream(t)
	mr := miniredis.RunT(t)
	svc := newTestService(t, up.server.URL, mr)
	ctx := context.Background()

	require.NoError(t, svc.Refresh(ctx))
	first := svc.View()

	up.fail.Store(true)
	assert.Error(t, svc.Refresh(ctx))

	view := svc.View()
	assert.Len(t, view.Coins, 2)
	assert.NotEmpty(t, view.Error)
	assert.False(t, view.ShowingCached)
	assert.Equal(t, first.LastUpdated, view.LastUpdated)

	up.fail.Store(false)
	require.NoError(t, svc.Refresh(ctx))
	assert.Empty(t, svc.View().Error)
}

func TestService_FailureFallsBackToCache(t *testing.T) {
	up := newUpstream(t)
	mr := miniredis.RunT(t)
	ctx := context.Background()

	// a previous process filled the cache
	require.NoError(t, newTestService(t, up.server.URL, mr).Refresh(ctx))

	up.fail.Store(true)
	svc := newTestService(t, up.server.URL, mr)
	assert.Error(t, svc.Refresh(ctx))

	view := svc.View()
	require.Len(t, view.Coins, 2)
	assert.Equal(t, "bitcoin", view.Coins[0].ID)
	assert.True(t, view.ShowingCached)
	assert.NotEmpty(t, view.Error)
	assert.NotNil(t, view.LastUpdated)
}

func TestService_FailureWithoutCache(t *testing.T) {
	up := newUpstream(t)
	up.fail.Store(true)
	mr := miniredis.RunT(t)
	svc := newTestService(t, up.server.URL, mr)

	assert.Error(t, svc.Refresh(context.Background()))

	view := svc.View()
	assert.Empty(t, view.Coins)
	assert.NotEmpty(t, view.Error)
	assert.Nil(t, view.LastUpdated)
}

func TestService_RunPollsUntilCancelled(t *testing.T) {
	up := newUpstream(t)
	mr := miniredis.RunT(t)
	svc := newTestService(t, up.server.URL, mr)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return up.hits.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
