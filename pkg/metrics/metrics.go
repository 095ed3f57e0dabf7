package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	BRANCH_OK     = "ok"
	BRANCH_FAILED = "failed"
)

// Collector bundles the prometheus metrics of the search service. It satisfies
// overpass.RequestObserver and searcher.BranchObserver.
type Collector struct {
	gatherer prometheus.Gatherer

	OverpassRequests  *prometheus.CounterVec
	OverpassDurations *prometheus.HistogramVec

	Branches      *prometheus.CounterVec
	BranchResults *prometheus.CounterVec

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

// NewCollector registers the metrics against reg, defaulting to the global
// registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	c.OverpassRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "overpass_requests_total",
		Help: "Overpass fetches, labeled by outcome (ok, cache_hit, error).",
	}, []string{"outcome"}), "overpass_requests_total")
	if err != nil {
		return nil, err
	}

	c.OverpassDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "overpass_request_duration_seconds",
		Help:    "Overpass fetch latency in seconds.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"outcome"}), "overpass_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	c.Branches, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_branches_total",
		Help: "Per-region fan-out branches, labeled by region code and status.",
	}, []string{"region", "status"}), "search_branches_total")
	if err != nil {
		return nil, err
	}

	c.BranchResults, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_branch_points_total",
		Help: "Points of interest produced by fan-out branches before deduplication.",
	}, []string{"region"}), "search_branch_points_total")
	if err != nil {
		return nil, err
	}

	c.HTTPRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled http requests, labeled by method and status code.",
	}, []string{"method", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	c.HTTPDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Http request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Collector) ObserveRequest(outcome string, d time.Duration) {
	if c == nil {
		return
	}
	c.OverpassRequests.WithLabelValues(outcome).Inc()
	c.OverpassDurations.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) ObserveBranch(regionCode string, found int, err error) {
	if c == nil {
		return
	}
	if err != nil {
		c.Branches.WithLabelValues(regionCode, BRANCH_FAILED).Inc()
		return
	}
	c.Branches.WithLabelValues(regionCode, BRANCH_OK).Inc()
	c.BranchResults.WithLabelValues(regionCode).Add(float64(found))
}

// Instrument wraps next with request count and latency instrumentation.
func (c *Collector) Instrument(next http.Handler) http.Handler {
	if c == nil {
		return next
	}
	return promhttp.InstrumentHandlerDuration(c.HTTPDurations,
		promhttp.InstrumentHandlerCounter(c.HTTPRequests, next))
}

// Handler exposes the /metrics endpoint.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
