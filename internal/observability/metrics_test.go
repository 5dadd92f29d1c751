package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsAccumulatePerRoute(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/messages", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/api/messages", "POST", 500, 7*time.Millisecond)
	m.RecordRequest("/api/users", "GET", 200, time.Millisecond)

	stats := m.RouteSnapshot("POST", "/api/messages")
	assert.Equal(t, int64(2), stats.Requests)
	assert.Equal(t, int64(1), stats.Failures)
	assert.Equal(t, 12*time.Millisecond, stats.Elapsed)

	assert.Equal(t, int64(1), m.RouteSnapshot("GET", "/api/users").Requests)
	assert.Equal(t, RouteStats{}, m.RouteSnapshot("DELETE", "/api/users"))
}

func TestMetricsCountErrorCodes(t *testing.T) {
	m := NewMetrics()

	m.RecordError("/api/users", "POST", "CONFLICT")
	m.RecordError("/api/users", "POST", "CONFLICT")
	m.RecordError("/api/users", "POST", "VALIDATION_FAILED")

	assert.Equal(t, int64(2), m.ErrorCount("POST", "/api/users", "CONFLICT"))
	assert.Equal(t, int64(1), m.ErrorCount("POST", "/api/users", "VALIDATION_FAILED"))
	assert.Equal(t, int64(0), m.ErrorCount("GET", "/api/users", "CONFLICT"))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/health/live", "GET", 200, 0)
	m.RecordError("/health/live", "GET", "INTERNAL_ERROR")
	assert.Equal(t, RouteStats{}, m.RouteSnapshot("GET", "/health/live"))
	assert.Equal(t, int64(0), m.ErrorCount("GET", "/health/live", "INTERNAL_ERROR"))
}
