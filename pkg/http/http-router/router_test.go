package http_router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danisdan-stack/APP-de-Turismo/pkg/datastructure"
	router_helper "github.com/danisdan-stack/APP-de-Turismo/pkg/http/http-router/router-helper"
	"github.com/danisdan-stack/APP-de-Turismo/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct{}

func (stubService) Regions(prefix string) ([]string, error) { return []string{"Mendoza"}, nil }

func (stubService) Taxonomy() datastructure.Taxonomy { return datastructure.Taxonomy{} }

func (stubService) Search(ctx context.Context, filter datastructure.SearchFilter,
	near *datastructure.Coordinate) ([]datastructure.PointOfInterest, error) {
	if filter.Region == "panic" {
		panic("boom")
	}
	return []datastructure.PointOfInterest{}, nil
}

func (stubService) Stats(ctx context.Context, filter datastructure.SearchFilter) (datastructure.SearchStats, error) {
	return datastructure.SearchStats{Categories: map[string]int{}}, nil
}

func newTestHandler(t *testing.T) (http.Handler, *metrics.Collector) {
	t.Helper()
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	return NewAPI(zap.NewNop(), collector).Handler(stubService{}), collector
}

func TestHeartbeat(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ".", rr.Body.String())
}

func TestRequestID(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, rr.Header().Get(router_helper.REQUEST_ID_HEADER), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/regions", nil)
	req.Header.Set(router_helper.REQUEST_ID_HEADER, "abc")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc", rr.Header().Get(router_helper.REQUEST_ID_HEADER))
}

func TestEnforceJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"landscape":"rios_y_mar"}`))
	req.Header.Set("Content-Type", "text/plain")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"landscape":"rios_y_mar"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRecoverPanic(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"region":"panic"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "internal_error")
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/taxonomy", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{code="200",method="get"}`)
}

func TestRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", realIP(req))

	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", realIP(req))

	assert.Equal(t, "", realIP(httptest.NewRequest(http.MethodGet, "/", nil)))
}
