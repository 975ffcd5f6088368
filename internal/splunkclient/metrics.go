package splunkclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricNamespace groups this module's series under one Prometheus
// namespace, mirroring teleport.MetricNamespace's role in lib/cache/cache.go.
const metricNamespace = "splunk_tui"

// Collector records client-observable events (spec §4.1d). An implementation
// must be safe under concurrent use; NoopCollector is provided for callers
// that don't want metrics at all.
type Collector interface {
	RecordRequest(route, method string)
	RecordRequestDuration(route, method string, elapsed time.Duration, status int)
	RecordRetry(route, method string, attempt int)
	RecordError(route, method, category string)
}

// NoopCollector discards everything; used when metrics are disabled.
type NoopCollector struct{}

func (NoopCollector) RecordRequest(string, string)                       {}
func (NoopCollector) RecordRequestDuration(string, string, time.Duration, int) {}
func (NoopCollector) RecordRetry(string, string, int)                    {}
func (NoopCollector) RecordError(string, string, string)                 {}

var _ Collector = NoopCollector{}

// PrometheusCollector backs Collector with real counters/histograms,
// grounded on the CounterVec/HistogramVec construction pattern in
// lib/cache/cache.go.
type PrometheusCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retriesTotal    *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
}

// NewPrometheusCollector constructs and registers a PrometheusCollector
// against reg. Passing a fresh prometheus.NewRegistry() in tests avoids
// collisions with the global DefaultRegisterer across test runs.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "requests_total",
			Help:      "Total number of REST client requests issued, by route and method.",
		}, []string{"route", "method"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "request_duration_seconds",
			Help:      "REST client request duration in seconds, by route, method, and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		retriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "retries_total",
			Help:      "Total number of retry attempts, by route and method.",
		}, []string{"route", "method"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "errors_total",
			Help:      "Total number of taxonomized errors, by route, method, and category.",
		}, []string{"route", "method", "category"}),
	}
	if reg != nil {
		reg.MustRegister(c.requestsTotal, c.requestDuration, c.retriesTotal, c.errorsTotal)
	}
	return c
}

func (c *PrometheusCollector) RecordRequest(route, method string) {
	c.requestsTotal.WithLabelValues(route, method).Inc()
}

func (c *PrometheusCollector) RecordRequestDuration(route, method string, elapsed time.Duration, status int) {
	c.requestDuration.WithLabelValues(route, method, statusLabel(status)).Observe(elapsed.Seconds())
}

func (c *PrometheusCollector) RecordRetry(route, method string, attempt int) {
	c.retriesTotal.WithLabelValues(route, method).Inc()
}

func (c *PrometheusCollector) RecordError(route, method, category string) {
	c.errorsTotal.WithLabelValues(route, method, category).Inc()
}

var _ Collector = (*PrometheusCollector)(nil)

func statusLabel(status int) string {
	if status <= 0 {
		return "none"
	}
	return strconv.Itoa(status)
}

