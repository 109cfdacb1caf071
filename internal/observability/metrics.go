package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	renderCount   map[string]int64
	cacheHits     int64
	emptyViews    int64
	totalDuration time.Duration
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Requests        map[string]int64 `json:"requests"`
	Errors          map[string]int64 `json:"errors"`
	Renders         map[string]int64 `json:"renders"`
	CacheHits       int64            `json:"cache_hits"`
	EmptyViews      int64            `json:"empty_views"`
	AvgRequestMilli float64          `json:"avg_request_ms"`
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		renderCount:  make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.totalDuration += duration
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordRender counts one render pass by output format.
func (m *Metrics) RecordRender(format string, rows int, cacheHit bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renderCount[format]++
	if cacheHit {
		m.cacheHits++
	}
	if rows == 0 {
		m.emptyViews++
	}
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		Requests:   copyCounts(m.requestCount),
		Errors:     copyCounts(m.errorCount),
		Renders:    copyCounts(m.renderCount),
		CacheHits:  m.cacheHits,
		EmptyViews: m.emptyViews,
	}
	var total int64
	for _, n := range m.requestCount {
		total += n
	}
	if total > 0 {
		snap.AvgRequestMilli = float64(m.totalDuration.Milliseconds()) / float64(total)
	}
	return snap
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
