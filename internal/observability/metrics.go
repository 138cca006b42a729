package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the service.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec // labels: endpoint, status

	// Upstream provider metrics.
	ProviderRequests *prometheus.CounterVec   // labels: provider={forecast,soil}, outcome={success,error}
	ProviderDuration *prometheus.HistogramVec // labels: provider={forecast,soil}
	ProviderCache    *prometheus.CounterVec   // labels: provider={forecast,soil}, result={hit,miss}

	// Mock segmentation metrics.
	SegmentFiles prometheus.Histogram

	// Calculator metrics.
	CalcOverflows prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.HTTPRequests,
		m.ProviderRequests,
		m.ProviderDuration,
		m.ProviderCache,
		m.SegmentFiles,
		m.CalcOverflows,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainharvest",
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainharvest",
			Name:      "provider_requests_total",
			Help:      "Upstream provider requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rainharvest",
			Name:      "provider_request_duration_seconds",
			Help:      "Upstream provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rainharvest",
			Name:      "provider_cache_total",
			Help:      "Provider cache lookups by provider and result.",
		}, []string{"provider", "result"}),
		SegmentFiles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rainharvest",
			Name:      "segment_files",
			Help:      "Number of files per segmentation request.",
			Buckets:   []float64{1, 2, 3, 5, 10, 20},
		}),
		CalcOverflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rainharvest",
			Name:      "calc_overflows_total",
			Help:      "Calculator requests whose result reported tank overflow.",
		}),
	}
}
