package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metric:
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metric
				}
			}
			if metric.GetCounter() != nil {
				return metric.GetCounter().GetValue()
			}
			return metric.GetGauge().GetValue()
		}
	}
	return 0
}

func TestMetrics_Tasks(t *testing.T) {
	m := New(zerolog.Nop())

	m.RecordTaskStarted("Facebook")
	m.RecordTaskStarted("Facebook")
	m.RecordCountdownDone()
	m.RecordTaskClaimed("Facebook", 10)
	m.RecordTaskClaimed("YouTube", 20)

	assert.Equal(t, 2.0, counterValue(t, m, "lyra_tasks_started_total", map[string]string{"platform": "Facebook"}))
	assert.Equal(t, 1.0, counterValue(t, m, "lyra_active_countdowns", nil))
	assert.Equal(t, 30.0, counterValue(t, m, "lyra_minutes_rewarded_total", nil))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	a := New(zerolog.Nop())
	b := New(zerolog.Nop())

	a.RecordReferralSubmitted()

	assert.Equal(t, 1.0, counterValue(t, a, "lyra_referral_submissions_total", nil))
	assert.Equal(t, 0.0, counterValue(t, b, "lyra_referral_submissions_total", nil))
}

func TestMetrics_Handler(t *testing.T) {
	m := New(zerolog.Nop())
	m.RecordPriceRefresh(false, 0.2)
	m.RecordWalletEvent("connect")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `lyra_price_refreshes_total{status="failed"} 1`))
	assert.True(t, strings.Contains(body, `lyra_wallet_events_total{event="connect"} 1`))
}
