package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSearchMetrics() {
	r.SearchIterationsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "freightnet_search_iterations_total",
			Help: "Total cost-minimization search iterations executed",
		},
	)

	r.SearchMovesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "freightnet_search_moves_total",
			Help: "Candidate bulk derivations evaluated by the search",
		},
		[]string{"direction", "accepted"},
	)

	r.SearchConfigsCosted = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "freightnet_search_configs_costed_total",
			Help: "Modal split configurations whose total cost was evaluated",
		},
	)
}

func (r *Registry) initCostMetrics() {
	r.NetworkCost = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "freightnet_network_cost",
			Help: "Last computed cost per modal network",
		},
		[]string{"mode"},
	)

	r.TotalCost = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "freightnet_total_cost",
			Help: "Last computed total bimodal network cost",
		},
	)

	r.MinCostObserved = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "freightnet_min_cost_observed",
			Help: "Lowest total cost observed by the minimization search",
		},
	)

	r.MaxCostObserved = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "freightnet_max_cost_observed",
			Help: "Highest total cost observed by the minimization search",
		},
	)
}
