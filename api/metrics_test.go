package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollector_RecordAggregatesPerRoute(t *testing.T) {
	mc := NewMetricsCollector()

	mc.Record("GET", "/api/v1/affaire/3b241101-e2bb-4255-8caf-4136c566a962", 200, 10*time.Millisecond)
	mc.Record("GET", "/api/v1/affaire/9f8b6c2d-1a2b-4c3d-8e4f-5a6b7c8d9e0f", 404, 30*time.Millisecond)

	routes := mc.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/api/v1/affaire/{id}", routes[0].Path)
	assert.Equal(t, int64(2), routes[0].Count)
	assert.Equal(t, int64(1), routes[0].ErrorCount)
	assert.Equal(t, 10*time.Millisecond, routes[0].MinTime)
	assert.Equal(t, 30*time.Millisecond, routes[0].MaxTime)

	summary := mc.Summary()
	assert.Equal(t, int64(2), summary["totalRequests"])
	assert.Equal(t, int64(1), summary["totalErrors"])
}

func TestMetricsMiddleware_SkipsHealth(t *testing.T) {
	mc := NewMetricsCollector()
	handler := mc.MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/health", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Empty(t, mc.Routes())

	req = httptest.NewRequest("GET", "/api/v1/audiences", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	assert.Len(t, mc.Routes(), 1)
}

func TestNormalizeRoutePath(t *testing.T) {
	assert.Equal(t, "/api/v1/affaire/{id}/plumitifs",
		normalizeRoutePath("/api/v1/affaire/3b241101-e2bb-4255-8caf-4136c566a962/plumitifs"))
	assert.Equal(t, "/api/v1/affaires", normalizeRoutePath("/api/v1/affaires/"))
}
