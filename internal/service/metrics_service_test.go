package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSnapshotAggregates(t *testing.T) {
	m := NewMetricsService()

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/sites/summary/equipment", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/payroll", http.StatusOK, 40*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.ObserveUpstream("equipment", http.StatusOK, 10*time.Millisecond)
	m.ObserveUpstream("sites", 0, 30*time.Millisecond)
	m.ObserveUpstream("labor", http.StatusBadGateway, 20*time.Millisecond)

	snap := m.Snapshot()

	assert.Equal(t, uint64(2), snap.RequestsTotal)
	assert.InDelta(t, 30.0, snap.AverageRequestDurationMs, 0.001)
	assert.Equal(t, uint64(2), snap.CacheHits)
	assert.Equal(t, uint64(1), snap.CacheMisses)
	assert.InDelta(t, 2.0/3.0, snap.CacheHitRatio, 0.0001)
	assert.Equal(t, uint64(3), snap.UpstreamCalls)
	assert.Equal(t, uint64(2), snap.UpstreamFailures)
	assert.InDelta(t, 20.0, snap.AverageUpstreamDurationMs, 0.001)
}

func TestMetricsHandlerExposesUpstreamHistogram(t *testing.T) {
	m := NewMetricsService()
	m.ObserveUpstream("materials", http.StatusOK, 5*time.Millisecond)
	m.RecordInvalidation("materials", nil)
	m.RecordInvalidation("materials", errors.New("redis down"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `upstream_request_duration_seconds_count{resource="materials",status="200"} 1`)
	assert.Contains(t, body, `snapshot_invalidations_total{outcome="failed",resource="materials"} 1`)
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveUpstream("sites", http.StatusOK, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordInvalidation("sites", nil)
	assert.Zero(t, m.Snapshot().RequestsTotal)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
