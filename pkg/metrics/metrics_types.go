package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all metrics for the engine
type Registry struct {
	// Derivation metrics
	DerivationsTotal      *prometheus.CounterVec
	DerivedTonsTotal      *prometheus.CounterVec
	DerivationCoefficient prometheus.Histogram
	LinkLoadClampsTotal   prometheus.Counter

	// Search metrics
	SearchIterationsTotal prometheus.Counter
	SearchMovesTotal      *prometheus.CounterVec
	SearchConfigsCosted   prometheus.Counter

	// Cost metrics
	NetworkCost     *prometheus.GaugeVec
	TotalCost       prometheus.Gauge
	MinCostObserved prometheus.Gauge
	MaxCostObserved prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initDerivationMetrics()
	r.initSearchMetrics()
	r.initCostMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// Handler returns an HTTP handler serving the registry in Prometheus format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
