// Package freight couples one railway and one roadway network into a
// bimodal freight transport system. It wraps the derivation engine's
// operations in mode-explicit form, aggregates total network cost, and
// searches for the minimum-cost modal split.
package freight

import (
	"math"

	"github.com/lucfranzoi/freightnet/pkg/derivation"
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/metrics"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// FreightNetwork orchestrates the two modal networks. It shares the
// networks rather than owning them; both outlive the orchestrator.
// MinCost/MaxCost are the running cost extrema of the last minimization
// run, reset at the start of each search.
type FreightNetwork struct {
	rail    *network.Network
	road    *network.Network
	engine  *derivation.Engine
	logger  logging.Logger
	metrics *metrics.Registry

	MinCost float64
	MaxCost float64

	railSnap *network.Snapshot
	roadSnap *network.Snapshot
}

// New creates a freight network over the given modal networks
func New(rail, road *network.Network, engine *derivation.Engine, logger logging.Logger, reg *metrics.Registry) *FreightNetwork {
	if engine == nil {
		engine = derivation.New(derivation.Config{})
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &FreightNetwork{
		rail:    rail,
		road:    road,
		engine:  engine,
		logger:  logger.With(logging.Component("freight")),
		metrics: reg,
		MinCost: math.Inf(1),
		MaxCost: 0,
	}
}

// Rail returns the railway network
func (f *FreightNetwork) Rail() *network.Network {
	return f.rail
}

// Road returns the roadway network
func (f *FreightNetwork) Road() *network.Network {
	return f.road
}

// CostNetwork returns the total cost of the bimodal system: the sum of
// both modal networks' mobility and infrastructure costs.
func (f *FreightNetwork) CostNetwork() float64 {
	railCost := f.rail.Cost()
	roadCost := f.road.Cost()
	f.metrics.RecordCosts(railCost, roadCost)
	return railCost + roadCost
}

// DeriveToRailway shifts coeff of a road od pair's tonnage to its rail twin
func (f *FreightNetwork) DeriveToRailway(od *network.ODPair, coeff float64) (float64, error) {
	return f.engine.Derive(od, f.road, f.rail, coeff)
}

// DeriveToRoadway shifts coeff of a rail od pair's tonnage to its road twin
func (f *FreightNetwork) DeriveToRoadway(od *network.ODPair, coeff float64) (float64, error) {
	return f.engine.Derive(od, f.rail, f.road, coeff)
}

// DeriveAllToRailway derives every eligible road od pair to railway mode
func (f *FreightNetwork) DeriveAllToRailway() (derivation.Summary, error) {
	return f.engine.DeriveAll(f.road, f.rail)
}

// DeriveAllToRoadway derives every eligible rail od pair to roadway mode
func (f *FreightNetwork) DeriveAllToRoadway() (derivation.Summary, error) {
	return f.engine.DeriveAll(f.rail, f.road)
}

// FreeRailwayLink forces every rail od pair using the given link variant
// back to roadway mode in full
func (f *FreightNetwork) FreeRailwayLink(linkID, gauge string) (derivation.Summary, error) {
	return f.engine.FreeLink(f.rail, f.road, linkID, gauge)
}

// observeCost folds a total cost into the running extrema
func (f *FreightNetwork) observeCost(cost float64) {
	if cost < f.MinCost {
		f.MinCost = cost
	}
	if cost > f.MaxCost {
		f.MaxCost = cost
	}
	f.metrics.RecordCostExtrema(f.MinCost, f.MaxCost)
}
