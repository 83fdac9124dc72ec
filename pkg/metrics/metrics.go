package metrics

import "strconv"

// RecordDerivation records a single OD pair derivation attempt
func (r *Registry) RecordDerivation(direction, status string, tons, coefficient float64) {
	r.DerivationsTotal.WithLabelValues(direction, status).Inc()
	if status == "derived" {
		r.DerivedTonsTotal.WithLabelValues(direction).Add(tons)
		r.DerivationCoefficient.Observe(coefficient)
	}
}

// RecordClamp records a link load clamped to zero
func (r *Registry) RecordClamp() {
	r.LinkLoadClampsTotal.Inc()
}

// RecordSearchMove records a candidate configuration evaluated by the search
func (r *Registry) RecordSearchMove(direction string, accepted bool) {
	r.SearchMovesTotal.WithLabelValues(direction, strconv.FormatBool(accepted)).Inc()
}

// RecordSearchIteration records one search iteration
func (r *Registry) RecordSearchIteration() {
	r.SearchIterationsTotal.Inc()
}

// RecordCosts records the per-mode and total network costs
func (r *Registry) RecordCosts(railCost, roadCost float64) {
	r.NetworkCost.WithLabelValues("railway").Set(railCost)
	r.NetworkCost.WithLabelValues("roadway").Set(roadCost)
	r.TotalCost.Set(railCost + roadCost)
	r.SearchConfigsCosted.Inc()
}

// RecordCostExtrema records the running min/max total costs of a search
func (r *Registry) RecordCostExtrema(minCost, maxCost float64) {
	r.MinCostObserved.Set(minCost)
	r.MaxCostObserved.Set(maxCost)
}
