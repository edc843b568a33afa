package observability_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/automata/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := observability.NewMetrics()

	m.ObserveConversion(4, 10*time.Millisecond)
	m.ObserveConversion(2, time.Millisecond)
	m.ObserveCacheHit()
	m.ObserveFailure()

	count, err := testutil.GatherAndCount(m.Registry(), "automata_conversions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "one series per outcome")

	count, err = testutil.GatherAndCount(m.Registry(), "automata_dfa_states")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveCacheHit()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `automata_conversions_total{outcome="cached"} 1`)
}
