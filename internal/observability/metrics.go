package observability

import (
	"sync"
	"time"
)

// RouteKey identifies one method+path pair of the portal API, e.g.
// POST /api/messages or GET /api/conversations.
type RouteKey struct {
	Method string
	Path   string
}

// RouteStats accumulates request outcomes for one route.
type RouteStats struct {
	Requests int64
	Failures int64 // responses with status >= 500
	Elapsed  time.Duration
}

// Metrics keeps in-process per-route counters. Zero value via NewMetrics; a
// nil receiver records nothing so handlers never have to guard.
type Metrics struct {
	mu     sync.Mutex
	routes map[RouteKey]*RouteStats
	errors map[RouteKey]map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		routes: make(map[RouteKey]*RouteStats),
		errors: make(map[RouteKey]map[string]int64),
	}
}

// RecordRequest accumulates count, latency and failure totals for a route.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := RouteKey{Method: method, Path: path}
	m.mu.Lock()
	defer m.mu.Unlock()
	stats, ok := m.routes[key]
	if !ok {
		stats = &RouteStats{}
		m.routes[key] = stats
	}
	stats.Requests++
	stats.Elapsed += duration
	if status >= 500 {
		stats.Failures++
	}
}

// RecordError counts domain error codes per route.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := RouteKey{Method: method, Path: path}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors[key] == nil {
		m.errors[key] = make(map[string]int64)
	}
	m.errors[key][code]++
}

// RouteSnapshot returns a copy of the accumulated stats for one route.
func (m *Metrics) RouteSnapshot(method, path string) RouteStats {
	if m == nil {
		return RouteStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if stats, ok := m.routes[RouteKey{Method: method, Path: path}]; ok {
		return *stats
	}
	return RouteStats{}
}

// ErrorCount returns how often a given error code was recorded for a route.
func (m *Metrics) ErrorCount(method, path, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[RouteKey{Method: method, Path: path}][code]
}
