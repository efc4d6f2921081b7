package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lyra-coin-backend/internal/features/prices/models"
	"lyra-coin-backend/internal/metrics"
)

const (
	CacheKeyCoins     = "cached-coins"
	CacheKeyTimestamp = "cached-coins-timestamp"

	fetchErrorMessage = "Failed to fetch latest prices"
)

type Fetcher interface {
	FetchMarkets(ctx context.Context) ([]models.Coin, error)
}

// Cache is the durable last-known copy of the market data.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	SetMany(ctx context.Context, values map[string]interface{}, ttl time.Duration) error
}

// Service keeps the latest market data and falls back to the durable cache
// when the upstream fails and nothing was fetched yet.
type Service struct {
	fetcher  Fetcher
	cache    Cache
	interval time.Duration
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	now      func() time.Time

	mu            sync.RWMutex
	coins         []models.Coin
	lastUpdated   time.Time
	lastErr       string
	showingCached bool
}

func NewService(fetcher Fetcher, cache Cache, interval time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    cache,
		interval: interval,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// Refresh fetches once. Failures never clear data already shown; the
// returned error is informational.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()
	coins, err := s.fetcher.FetchMarkets(ctx)
	s.metrics.RecordPriceRefresh(err == nil, time.Since(start).Seconds())

	if err != nil {
		s.logger.Warn().Err(err).Msg("Price refresh failed")
		s.fallback(ctx)
		return err
	}

	now := s.now()

	s.mu.Lock()
	s.coins = coins
	s.lastUpdated = now
	s.lastErr = ""
	s.showingCached = false
	s.mu.Unlock()

	if err := s.cache.SetMany(ctx, map[string]interface{}{
		CacheKeyCoins:     coins,
		CacheKeyTimestamp: now.UTC().Format(time.RFC3339Nano),
	}, 0); err != nil {
		s.logger.Error().Err(err).Msg("Failed to write price cache")
	}

	s.logger.Debug().Int("coins", len(coins)).Msg("Prices refreshed")
	return nil
}

func (s *Service) fallback(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastErr = fetchErrorMessage
	if len(s.coins) > 0 {
		return
	}

	var cached []models.Coin
	if err := s.cache.Get(ctx, CacheKeyCoins, &cached); err != nil {
		s.logger.Debug().Err(err).Msg("No cached prices available")
		return
	}
	s.coins = cached
	s.showingCached = true

	var ts string
	if err := s.cache.Get(ctx, CacheKeyTimestamp, &ts); err == nil {
		if at, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			s.lastUpdated = at
		}
	}
	s.logger.Info().Int("coins", len(cached)).Msg("Showing cached prices")
}

// Run refreshes immediately and then on every interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	_ = s.Refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Price poller stopped")
			return
		case <-ticker.C:
			_ = s.Refresh(ctx)
		}
	}
}

// Coins returns the raw list currently shown.
func (s *Service) Coins() []models.Coin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Coin(nil), s.coins...)
}

// View returns the formatted price page state.
func (s *Service) View() models.View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := models.View{
		Coins:         make([]models.CoinView, 0, len(s.coins)),
		Error:         s.lastErr,
		ShowingCached: s.showingCached,
	}
	if !s.lastUpdated.IsZero() {
		t := s.lastUpdated
		view.LastUpdated = &t
	}
	for _, c := range s.coins {
		change, trend := FormatChange(c.PriceChangePercentage24h)
		view.Coins = append(view.Coins, models.CoinView{
			Coin:        c,
			Price:       FormatPrice(c.CurrentPrice),
			MarketCapFm: FormatMarketCap(c.MarketCap),
			Change24h:   change,
			Trend:       trend,
		})
	}
	return view
}
