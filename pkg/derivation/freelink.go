package derivation

import (
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// FreeLink forces every source-network od pair whose path uses the given
// link variant back to the other mode in full, modelling a capacity
// withdrawal or maintenance closure of that link. The distance and tonnage
// eligibility rules do not apply; the link itself has become unusable. Each
// affected pair must still have a twin in the target network.
func (e *Engine) FreeLink(source, target *network.Network, linkID, gauge string) (Summary, error) {
	if _, err := source.Link(linkID, gauge); err != nil {
		return Summary{}, &Error{Op: "FreeLink", Cause: err}
	}

	var summary Summary
	for _, od := range source.ODPairs() {
		if od.Gauge != gauge || !od.UsesLink(linkID) {
			continue
		}
		summary.Considered++
		if od.Tons == 0 {
			continue
		}

		moved, err := e.Derive(od, source, target, 1.0)
		if err != nil {
			return summary, err
		}
		summary.Derived++
		summary.Tons += moved
	}

	e.logger.Info("freed link",
		logging.LinkID(linkID), logging.Gauge(gauge),
		logging.Mode(string(source.Mode())),
		logging.Int("od_pairs_reversed", summary.Derived),
		logging.Tons(summary.Tons))

	return summary, nil
}
