package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveImport(t *testing.T) {
	initialTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("local", ImportResultOK))
	initialArticles := testutil.ToFloat64(ImportedArticles.WithLabelValues("local"))

	ObserveImport("local", ImportResultOK, 0.75, 12)

	newTotal := testutil.ToFloat64(ImportsTotal.WithLabelValues("local", ImportResultOK))
	assert.Equal(t, initialTotal+1, newTotal, "ImportsTotal should increment by 1")

	newArticles := testutil.ToFloat64(ImportedArticles.WithLabelValues("local"))
	assert.Equal(t, initialArticles+12, newArticles, "ImportedArticles should increase by imported count")

	count := testutil.CollectAndCount(ImportDuration)
	assert.GreaterOrEqual(t, count, 1, "ImportDuration should have observations")
}

func TestObserveImportZeroImported(t *testing.T) {
	initialArticles := testutil.ToFloat64(ImportedArticles.WithLabelValues("national"))

	ObserveImport("national", ImportResultUpstreamError, 0.1, 0)

	newArticles := testutil.ToFloat64(ImportedArticles.WithLabelValues("national"))
	assert.Equal(t, initialArticles, newArticles, "ImportedArticles should not change for zero imports")
}

func TestObserveModeration(t *testing.T) {
	initial := testutil.ToFloat64(ModerationTransitions.WithLabelValues("approve"))

	ObserveModeration("approve")

	after := testutil.ToFloat64(ModerationTransitions.WithLabelValues("approve"))
	assert.Equal(t, initial+1, after, "ModerationTransitions should increment")
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initialRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	newRequests := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initialRequests+1, newRequests)
}

func TestCacheEventsMetric(t *testing.T) {
	initial := testutil.ToFloat64(CacheEvents.WithLabelValues("hit"))
	CacheEvents.WithLabelValues("hit").Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(CacheEvents.WithLabelValues("hit")))
}

func TestTimerObserveDuration(t *testing.T) {
	timer := NewTimer()

	time.Sleep(10 * time.Millisecond)

	testHistogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "test_timer_duration_histogram",
		Help:    "Test histogram for timer duration",
		Buckets: []float64{.01, .05, .1, .5, 1},
	})
	prometheus.MustRegister(testHistogram)
	defer prometheus.Unregister(testHistogram)

	timer.ObserveDuration(testHistogram)

	count := testutil.CollectAndCount(testHistogram)
	assert.Equal(t, 1, count, "Histogram should have exactly one observation")
	assert.Greater(t, timer.Seconds(), 0.0)
}

func TestPoolStatsCollectorStartStop(t *testing.T) {
	mockProvider := &mockPoolStatsProvider{
		totalConns:    10,
		idleConns:     5,
		acquiredConns: 5,
	}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)

	collector.Start(10 * time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	total := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("total"))
	idle := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("idle"))
	acquired := testutil.ToFloat64(DBConnectionPoolSize.WithLabelValues("acquired"))

	assert.Equal(t, float64(10), total, "Total connections should be 10")
	assert.Equal(t, float64(5), idle, "Idle connections should be 5")
	assert.Equal(t, float64(5), acquired, "Acquired connections should be 5")

	collector.Stop()
}

// mockPoolStats implements PoolStats for testing
type mockPoolStats struct {
	total    int32
	idle     int32
	acquired int32
}

func (m *mockPoolStats) TotalConns() int32    { return m.total }
func (m *mockPoolStats) IdleConns() int32     { return m.idle }
func (m *mockPoolStats) AcquiredConns() int32 { return m.acquired }

// mockPoolStatsProvider implements PoolStatsProvider for testing
type mockPoolStatsProvider struct {
	totalConns    int32
	idleConns     int32
	acquiredConns int32
}

func (m *mockPoolStatsProvider) Stat() PoolStats {
	return &mockPoolStats{
		total:    m.totalConns,
		idle:     m.idleConns,
		acquired: m.acquiredConns,
	}
}

func TestPoolStatsCollectorMultipleCollections(t *testing.T) {
	mockProvider := &dynamicMockPoolStatsProvider{}

	collector := NewPoolStatsCollectorWithProvider(mockProvider)
	collector.Start(5 * time.Millisecond)

	time.Sleep(25 * time.Millisecond)

	collector.Stop()

	assert.GreaterOrEqual(t, mockProvider.calls, 2, "Should collect multiple times")
}

type dynamicMockPoolStatsProvider struct {
	calls int
}

func (m *dynamicMockPoolStatsProvider) Stat() PoolStats {
	m.calls++
	return &mockPoolStats{
		total:    int32(10 + m.calls),
		idle:     5,
		acquired: int32(5 + m.calls),
	}
}
