package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initDerivationMetrics() {
	r.DerivationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightnet_derivations_total",
			Help: "Total number of OD pair derivations attempted",
		},
		[]string{"direction", "status"},
	)

	r.DerivedTonsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightnet_derived_tons_total",
			Help: "Total tonnage shifted between modes",
		},
		[]string{"direction"},
	)

	r.DerivationCoefficient = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "freightnet_derivation_coefficient",
			Help:    "Distribution of derivation coefficients applied",
			Buckets: []float64{0.05, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	r.LinkLoadClampsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "freightnet_link_load_clamps_total",
			Help: "Times a link original load was clamped to zero during a transfer",
		},
	)
}
