// Package derivation implements the core engine that shifts od pair tonnage
// between the two modal networks: the eligibility predicate, the geometric
// interpolation that sizes each shift, the transfer bookkeeping that keeps
// link loads consistent in both networks, and the bulk operations built on
// top of them.
package derivation

import (
	"runtime"

	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/metrics"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// CapacityPolicy decides what happens when a transfer would drive a link's
// original load negative.
type CapacityPolicy int

const (
	// ClampToZero floors the link load at zero and logs a warning
	ClampToZero CapacityPolicy = iota
	// RejectNegative fails the transfer before any state is mutated
	RejectNegative
)

// ThresholdSource selects which mode's parameter store supplies the
// derivation thresholds and interpolation bounds.
type ThresholdSource int

const (
	// TargetParams reads thresholds from the target mode's store
	TargetParams ThresholdSource = iota
	// SourceParams reads thresholds from the source mode's store
	SourceParams
)

// Config configures a derivation engine
type Config struct {
	// Capacity is the negative-link-load policy, default ClampToZero
	Capacity CapacityPolicy
	// Thresholds selects the parameter store for both directions, default TargetParams
	Thresholds ThresholdSource
	// Workers bounds the parallel eligibility pass; <= 0 means NumCPU
	Workers int
	// Logger receives engine events; nil means no logging
	Logger logging.Logger
	// Metrics receives engine counters; nil means a private registry
	Metrics *metrics.Registry
}

// Engine applies derivation operations between two modal networks
type Engine struct {
	capacity   CapacityPolicy
	thresholds ThresholdSource
	workers    int
	logger     logging.Logger
	metrics    *metrics.Registry
}

// New creates a derivation engine from the given config
func New(cfg Config) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	reg := cfg.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Engine{
		capacity:   cfg.Capacity,
		thresholds: cfg.Thresholds,
		workers:    workers,
		logger:     logger.With(logging.Component("derivation")),
		metrics:    reg,
	}
}

// paramStore resolves the parameter store thresholds are read from,
// honouring the configured ThresholdSource.
func (e *Engine) paramStore(source, target *network.Network) *network.ParamStore {
	if e.thresholds == SourceParams {
		return source.Params()
	}
	return target.Params()
}

// direction names the transfer direction for logs and metrics
func direction(target *network.Network) string {
	if target.Mode() == network.Railway {
		return "to_railway"
	}
	return "to_roadway"
}
