package derivation

import (
	"sync"

	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// Summary reports the outcome of a bulk operation
type Summary struct {
	Considered int     // od pairs examined
	Derived    int     // od pairs that shifted mode
	Tons       float64 // total tonnage moved
}

// candidate is the read-only evaluation result for one od pair
type candidate struct {
	eligible bool
	coeff    float64
	err      error
}

// DeriveAll evaluates every od pair of the source network and shifts the
// eligible ones to the target network. Eligibility and coefficients are
// pure reads, so they are evaluated in parallel across od pairs; the
// transfers, which mutate shared link state, are then applied sequentially.
// The first fatal evaluation or transfer error aborts the whole operation.
func (e *Engine) DeriveAll(source, target *network.Network) (Summary, error) {
	ods := source.ODPairs()
	candidates := e.evaluateAll(ods, source, target)

	summary := Summary{Considered: len(ods)}
	for i, od := range ods {
		c := candidates[i]
		if c.err != nil {
			return summary, c.err
		}
		if !c.eligible {
			e.metrics.RecordDerivation(direction(target), "skipped", 0, 0)
			continue
		}

		moved, err := e.Derive(od, source, target, c.coeff)
		if err != nil {
			return summary, err
		}
		summary.Derived++
		summary.Tons += moved
	}

	e.logger.Info("bulk derivation finished",
		logging.String("direction", direction(target)),
		logging.Int("considered", summary.Considered),
		logging.Int("derived", summary.Derived),
		logging.Tons(summary.Tons))

	return summary, nil
}

// evaluateAll runs the eligibility predicate and coefficient computation
// for every od pair across the configured number of workers.
func (e *Engine) evaluateAll(ods []*network.ODPair, source, target *network.Network) []candidate {
	candidates := make([]candidate, len(ods))

	workers := e.workers
	if workers > len(ods) {
		workers = len(ods)
	}
	if workers <= 1 {
		for i, od := range ods {
			candidates[i] = e.evaluate(od, source, target)
		}
		return candidates
	}

	indexes := make(chan int, len(ods))
	for i := range ods {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				candidates[i] = e.evaluate(ods[i], source, target)
			}
		}()
	}
	wg.Wait()

	return candidates
}

func (e *Engine) evaluate(od *network.ODPair, source, target *network.Network) candidate {
	ok, err := e.Eligible(od, source, target)
	if err != nil {
		return candidate{err: err}
	}
	if !ok {
		return candidate{}
	}
	coeff, err := e.Coefficient(od, source, target)
	if err != nil {
		return candidate{err: err}
	}
	return candidate{eligible: true, coeff: coeff}
}
