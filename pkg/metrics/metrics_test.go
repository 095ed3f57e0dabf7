package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveRequest("ok", 120*time.Millisecond)
	c.ObserveRequest("ok", 80*time.Millisecond)
	c.ObserveRequest("cache_hit", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.OverpassRequests.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.OverpassRequests.WithLabelValues("cache_hit")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.OverpassDurations))
}

func TestObserveBranch(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	c.ObserveBranch("AR-M", 12, nil)
	c.ObserveBranch("AR-M", 3, nil)
	c.ObserveBranch("AR-Q", 0, errors.New("timeout"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Branches.WithLabelValues("AR-M", BRANCH_OK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Branches.WithLabelValues("AR-Q", BRANCH_FAILED)))
	assert.Equal(t, 15.0, testutil.ToFloat64(c.BranchResults.WithLabelValues("AR-M")))
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.ObserveRequest("ok", time.Second)
		c.ObserveBranch("AR-M", 1, nil)
	})

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	assert.NotNil(t, c.Instrument(h))
}

func TestRegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)

	first.ObserveRequest("error", time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.OverpassRequests.WithLabelValues("error")))
}

func TestInstrumentAndHandler(t *testing.T) {
	c, err := NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	h := c.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/regions", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("get", "404")))

	rr = httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "http_requests_total"))
}
