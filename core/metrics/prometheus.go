// Package metrics exports resolution outcomes, either to Prometheus or to
// a logger. Observers hook into the resolver without the resolution loop
// knowing about metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusObserver records resolution outcomes in a Prometheus registry.
type PrometheusObserver struct {
	registry *prometheus.Registry

	resolutionsTotal prometheus.Counter
	resolutionErrors *prometheus.CounterVec
	durationSeconds  prometheus.Histogram
}

// PrometheusConfig configures the Prometheus observer.
type PrometheusConfig struct {
	// Prefix is added to all metric names (default: "ash").
	Prefix string

	// Buckets for the duration histogram (in seconds).
	Buckets []float64
}

// DefaultBuckets returns default histogram buckets.
func DefaultBuckets() []float64 {
	return []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1}
}

// NewPrometheusObserver creates a new Prometheus observer.
func NewPrometheusObserver(cfg PrometheusConfig) *PrometheusObserver {
	if cfg.Prefix == "" {
		cfg.Prefix = "ash"
	}
	if cfg.Buckets == nil {
		cfg.Buckets = DefaultBuckets()
	}

	reg := prometheus.NewRegistry()

	o := &PrometheusObserver{
		registry: reg,
		resolutionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: cfg.Prefix + "_resolutions_total",
			Help: "Total number of resolution calls",
		}),
		resolutionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: cfg.Prefix + "_resolution_errors_total",
			Help: "Total number of failed resolution calls",
		}, []string{"kind"}),
		durationSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    cfg.Prefix + "_resolution_duration_seconds",
			Help:    "Resolution duration in seconds",
			Buckets: cfg.Buckets,
		}),
	}

	reg.MustRegister(o.resolutionsTotal, o.resolutionErrors, o.durationSeconds)
	return o
}

// ObserveResolution records one resolution outcome.
// kind is empty on success, otherwise the error kind label.
func (o *PrometheusObserver) ObserveResolution(kind string, elapsed time.Duration) {
	o.resolutionsTotal.Inc()
	if kind != "" {
		o.resolutionErrors.WithLabelValues(kind).Inc()
	}
	o.durationSeconds.Observe(elapsed.Seconds())
}

// Handler returns an HTTP handler exposing the metrics for scraping.
func (o *PrometheusObserver) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying Prometheus registry, for callers that
// merge it into their own exposition.
func (o *PrometheusObserver) Registry() *prometheus.Registry {
	return o.registry
}
