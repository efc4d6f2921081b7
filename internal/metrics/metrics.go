package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Metrics holds the application counters on a private registry.
type Metrics struct {
	logger   zerolog.Logger
	registry *prometheus.Registry

	tasksStarted  *prometheus.CounterVec
	tasksClaimed  *prometheus.CounterVec
	minutesEarned prometheus.Counter
	countdowns    prometheus.Gauge

	priceRefreshes *prometheus.CounterVec
	priceFetchTime prometheus.Histogram

	referralSubmits  prometheus.Counter
	walletConnects   *prometheus.CounterVec
	authFailures     prometheus.Counter
	requestsByStatus *prometheus.CounterVec
}

func New(logger zerolog.Logger) *Metrics {
	m := &Metrics{
		logger:   logger,
		registry: prometheus.NewRegistry(),

		tasksStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyra_tasks_started_total",
				Help: "Tasks moved to completing, by platform",
			},
			[]string{"platform"},
		),
		tasksClaimed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyra_tasks_claimed_total",
				Help: "Rewards claimed, by platform",
			},
			[]string{"platform"},
		),
		minutesEarned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lyra_minutes_rewarded_total",
				Help: "Minutes credited by claimed tasks",
			},
		),
		countdowns: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "lyra_active_countdowns",
				Help: "Countdowns currently running",
			},
		),
		priceRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyra_price_refreshes_total",
				Help: "Market data refreshes", // status: success, failed
			},
			[]string{"status"},
		),
		priceFetchTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lyra_price_fetch_seconds",
				Help:    "Market data request latency",
				Buckets: prometheus.DefBuckets,
			},
		),
		referralSubmits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lyra_referral_submissions_total",
				Help: "Referrer codes accepted",
			},
		),
		walletConnects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyra_wallet_events_total",
				Help: "Wallet connect and disconnect events",
			},
			[]string{"event"},
		),
		authFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "lyra_auth_failures_total",
				Help: "Requests that continued in degraded auth mode",
			},
		),
		requestsByStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lyra_http_requests_total",
				Help: "HTTP requests by method and status",
			},
			[]string{"method", "status"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.tasksStarted,
		m.tasksClaimed,
		m.minutesEarned,
		m.countdowns,
		m.priceRefreshes,
		m.priceFetchTime,
		m.referralSubmits,
		m.walletConnects,
		m.authFailures,
		m.requestsByStatus,
	)

	return m
}

func (m *Metrics) RecordTaskStarted(platform string) {
	m.tasksStarted.WithLabelValues(platform).Inc()
	m.countdowns.Inc()
}

// RecordCountdownDone is called when a countdown finishes or is cancelled.
func (m *Metrics) RecordCountdownDone() {
	m.countdowns.Dec()
}

func (m *Metrics) RecordTaskClaimed(platform string, reward int) {
	m.tasksClaimed.WithLabelValues(platform).Inc()
	m.minutesEarned.Add(float64(reward))
	m.logger.Debug().Str("platform", platform).Int("reward", reward).Msg("Reward claimed")
}

func (m *Metrics) RecordPriceRefresh(success bool, seconds float64) {
	status := "success"
	if !success {
		status = "failed"
	}
	m.priceRefreshes.WithLabelValues(status).Inc()
	m.priceFetchTime.Observe(seconds)
}

func (m *Metrics) RecordReferralSubmitted() {
	m.referralSubmits.Inc()
}

func (m *Metrics) RecordWalletEvent(event string) {
	m.walletConnects.WithLabelValues(event).Inc()
}

func (m *Metrics) RecordAuthFailure() {
	m.authFailures.Inc()
}

func (m *Metrics) RecordRequest(method, status string) {
	m.requestsByStatus.WithLabelValues(method, status).Inc()
}

// Registry exposes the private registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
