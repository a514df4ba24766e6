// Package metrics exposes Prometheus instrumentation for the gateway.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "podcast_gateway"

// OutcomeSuccess labels an upstream call that produced a result
const OutcomeSuccess = "success"

// Metrics holds the gateway collectors and the registry they live in
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	PodcastsReturned prometheus.Histogram
	HTTPRequests     *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream search calls by outcome (success or failure kind).",
		}, []string{"outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream search calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		PodcastsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "podcasts_returned",
			Help:      "Number of podcasts returned per successful search.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveUpstream records one upstream call
func (m *Metrics) ObserveUpstream(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequests.WithLabelValues(outcome).Inc()
	m.UpstreamDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObservePodcasts records the size of a successful result
func (m *Metrics) ObservePodcasts(count int) {
	if m == nil {
		return
	}
	m.PodcastsReturned.Observe(float64(count))
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the Prometheus HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	reg := m.Registry()
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
