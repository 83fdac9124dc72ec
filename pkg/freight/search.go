package freight

import (
	"math"

	"github.com/lucfranzoi/freightnet/pkg/derivation"
	"github.com/lucfranzoi/freightnet/pkg/logging"
)

// SearchState names the phases of the cost-minimization search
type SearchState int

const (
	StateInitial SearchState = iota
	StateExploring
	StateConverged
	StateTerminal
)

// String returns the string representation of a search state
func (s SearchState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateExploring:
		return "exploring"
	case StateConverged:
		return "converged"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Direction names a bulk derivation direction
type Direction int

const (
	ToRailway Direction = iota
	ToRoadway
)

// String returns the string representation of a direction
func (d Direction) String() string {
	if d == ToRailway {
		return "to_railway"
	}
	return "to_roadway"
}

func (d Direction) opposite() Direction {
	if d == ToRailway {
		return ToRoadway
	}
	return ToRailway
}

// SearchConfig bounds the minimization search
type SearchConfig struct {
	// MaxIterations caps the number of exploration rounds, default 10
	MaxIterations int
	// MinImprovement is the relative cost reduction a candidate must
	// deliver to be accepted, default 1e-6
	MinImprovement float64
}

// DefaultSearchConfig returns the default search bounds
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MaxIterations:  10,
		MinImprovement: 1e-6,
	}
}

// SearchResult reports the outcome of a minimization run
type SearchResult struct {
	State       SearchState
	Iterations  int
	InitialCost float64
	BestCost    float64
	MinCost     float64
	MaxCost     float64
	Moves       []Direction // accepted bulk derivations, in order
}

// MinimizeCost hunts for the modal split with the lowest total cost. From
// the current configuration it tries bulk-deriving in each direction,
// keeps a candidate only when it strictly improves total cost by at least
// MinImprovement, and stops when no candidate improves or the iteration
// budget runs out. A candidate that would immediately undo the previous
// accepted move is skipped, so the search cannot oscillate. Every
// evaluated configuration feeds the running min/max cost extrema.
func (f *FreightNetwork) MinimizeCost(cfg SearchConfig) (*SearchResult, error) {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultSearchConfig().MaxIterations
	}
	if cfg.MinImprovement <= 0 {
		cfg.MinImprovement = DefaultSearchConfig().MinImprovement
	}

	f.MinCost = math.Inf(1)
	f.MaxCost = 0

	result := &SearchResult{State: StateInitial}

	current := f.CostNetwork()
	f.observeCost(current)
	result.InitialCost = current

	result.State = StateExploring
	f.logger.Info("minimization started", logging.Cost(current),
		logging.Int("max_iterations", cfg.MaxIterations))

	lastAccepted := Direction(-1)
	for it := 0; it < cfg.MaxIterations; it++ {
		result.Iterations = it + 1
		f.metrics.RecordSearchIteration()

		improved := false
		for _, dir := range []Direction{ToRailway, ToRoadway} {
			if lastAccepted >= 0 && dir == lastAccepted.opposite() {
				continue
			}

			candidate, derived, err := f.tryDirection(dir)
			if err != nil {
				result.State = StateTerminal
				return result, err
			}
			if derived == 0 {
				// Nothing was derivable in this direction
				f.metrics.RecordSearchMove(dir.String(), false)
				continue
			}

			f.observeCost(candidate)
			if candidate < current*(1-cfg.MinImprovement) {
				current = candidate
				improved = true
				lastAccepted = dir
				result.Moves = append(result.Moves, dir)
				f.metrics.RecordSearchMove(dir.String(), true)
				f.logger.Info("accepted bulk derivation",
					logging.String("direction", dir.String()), logging.Cost(candidate))
				break
			}

			// Not good enough: roll the candidate back
			f.restoreLast()
			f.metrics.RecordSearchMove(dir.String(), false)
		}

		if !improved {
			break
		}
	}

	result.State = StateConverged
	result.BestCost = current
	result.MinCost = f.MinCost
	result.MaxCost = f.MaxCost

	f.logger.Info("minimization converged",
		logging.Int("iterations", result.Iterations),
		logging.Float64("initial_cost", result.InitialCost),
		logging.Float64("best_cost", result.BestCost))

	result.State = StateTerminal
	return result, nil
}

// tryDirection applies a bulk derivation in the given direction against a
// snapshot of both networks and returns the candidate's total cost and the
// number of od pairs that shifted. The snapshot stays held until the caller
// accepts the candidate or rolls it back with restoreLast.
func (f *FreightNetwork) tryDirection(dir Direction) (float64, int, error) {
	f.takeSnapshots()

	var summary derivation.Summary
	var err error
	if dir == ToRailway {
		summary, err = f.DeriveAllToRailway()
	} else {
		summary, err = f.DeriveAllToRoadway()
	}
	if err != nil {
		f.restoreLast()
		return 0, 0, err
	}

	cost := f.CostNetwork()
	return cost, summary.Derived, nil
}

// takeSnapshots captures the tonnage state of both networks
func (f *FreightNetwork) takeSnapshots() {
	f.railSnap = f.rail.Snapshot()
	f.roadSnap = f.road.Snapshot()
}

// restoreLast rolls both networks back to the last snapshots taken
func (f *FreightNetwork) restoreLast() {
	if f.railSnap != nil {
		f.rail.Restore(f.railSnap)
		f.road.Restore(f.roadSnap)
	}
}
