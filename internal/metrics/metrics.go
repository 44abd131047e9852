// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Seed run outcomes.
const (
	SeedResultSeeded  = "seeded"
	SeedResultSkipped = "skipped"
	SeedResultFailed  = "failed"
)

// Metrics holds the collectors exported on /metrics. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	gatherer        prometheus.Gatherer
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	seedRuns        *prometheus.CounterVec
	orderFetches    prometheus.Histogram
}

// New registers the service collectors, plus the Go and process collectors,
// on reg.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		return nil
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
	seedRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Catalog seed invocations by result.",
	}, []string{"result"})
	orderFetches := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_history_orders",
		Help:      "Number of orders returned per purchase history lookup.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})

	reg.MustRegister(
		requests,
		requestDuration,
		seedRuns,
		orderFetches,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		gatherer:        reg,
		requests:        requests,
		requestDuration: requestDuration,
		seedRuns:        seedRuns,
		orderFetches:    orderFetches,
	}
}

// ObserveRequest records one served request. Route is the matched gin route
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncSeedRun(result string) {
	if m == nil {
		return
	}
	m.seedRuns.WithLabelValues(normalizeLabel(result)).Inc()
}

func (m *Metrics) ObserveOrderHistory(orders int) {
	if m == nil {
		return
	}
	m.orderFetches.Observe(float64(orders))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
