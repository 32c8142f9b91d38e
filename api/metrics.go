package api

import (
	"regexp"
	"sort"
	"sync"
	"time"
)

// RouteMetrics aggregates request metrics for one method/path pair
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"totalTime"`
	AvgTime     time.Duration `json:"avgTime"`
	MinTime     time.Duration `json:"minTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector aggregates request metrics per route. It is created at
// startup and handed to the router explicitly; recording is lock-guarded
// and cheap enough to run inline.
type MetricsCollector struct {
	mu     sync.RWMutex
	routes map[string]*RouteMetrics
	start  time.Time

	totalRequests int64
	totalErrors   int64
}

// NewMetricsCollector creates an empty collector
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		routes: make(map[string]*RouteMetrics),
		start:  time.Now(),
	}
}

// Record adds one completed request to the per-route aggregates
func (mc *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	key := method + " " + normalizeRoutePath(path)

	mc.mu.Lock()
	defer mc.mu.Unlock()

	m, ok := mc.routes[key]
	if !ok {
		m = &RouteMetrics{Method: method, Path: normalizeRoutePath(path), MinTime: duration}
		mc.routes[key] = m
	}

	m.Count++
	m.TotalTime += duration
	m.AvgTime = m.TotalTime / time.Duration(m.Count)
	m.LastRequest = time.Now()
	if duration < m.MinTime {
		m.MinTime = duration
	}
	if duration > m.MaxTime {
		m.MaxTime = duration
	}
	if status >= 400 {
		m.ErrorCount++
		mc.totalErrors++
	}
	mc.totalRequests++
}

// Routes returns a copy of the per-route aggregates, slowest first
func (mc *MetricsCollector) Routes() []RouteMetrics {
	mc.mu.RLock()
	out := make([]RouteMetrics, 0, len(mc.routes))
	for _, m := range mc.routes {
		out = append(out, *m)
	}
	mc.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].AvgTime > out[j].AvgTime })
	return out
}

// Summary returns overall counters since startup
func (mc *MetricsCollector) Summary() map[string]interface{} {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	var errorRate float64
	if mc.totalRequests > 0 {
		errorRate = float64(mc.totalErrors) / float64(mc.totalRequests)
	}
	return map[string]interface{}{
		"totalRequests": mc.totalRequests,
		"totalErrors":   mc.totalErrors,
		"errorRate":     errorRate,
		"since":         mc.start,
		"routeCount":    len(mc.routes),
	}
}

var (
	uuidPattern    = regexp.MustCompile(`/[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
	numericPattern = regexp.MustCompile(`/\d{4,}`)
)

// normalizeRoutePath replaces dynamic id segments with {id} so one route
// aggregates into one bucket.
func normalizeRoutePath(path string) string {
	path = uuidPattern.ReplaceAllString(path, "/{id}")
	path = numericPattern.ReplaceAllString(path, "/{id}")
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}
	return path
}
