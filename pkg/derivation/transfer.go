package derivation

import (
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// Derive shifts coeff of the od pair's current tonnage to its twin in the
// target network and updates link loads on both paths: the tonnage leaves
// OriginalTon on every source-path link and arrives as DerivedTon on every
// target-path link. Returns the tonnage moved.
//
// All link lookups are resolved before any state is mutated, so a
// data-integrity failure (missing twin, missing link) leaves both networks
// untouched. Under RejectNegative the capacity check runs in the same
// pre-mutation pass. Calling Derive twice with the same coefficient
// double-derives; the coefficient always applies to the remaining tons.
func (e *Engine) Derive(od *network.ODPair, source, target *network.Network, coeff float64) (float64, error) {
	derived := od.Tons * coeff

	twin, ok := target.ODPair(od.ID, od.Category)
	if !ok {
		e.metrics.RecordDerivation(direction(target), "failed", 0, 0)
		return 0, &Error{Op: "Derive", ODID: od.ID, Category: od.Category, Cause: ErrTwinNotFound}
	}

	sourceLinks, err := resolveLinks(source, od)
	if err != nil {
		e.metrics.RecordDerivation(direction(target), "failed", 0, 0)
		return 0, err
	}
	targetLinks, err := resolveLinks(target, twin)
	if err != nil {
		e.metrics.RecordDerivation(direction(target), "failed", 0, 0)
		return 0, err
	}

	if e.capacity == RejectNegative {
		for _, l := range sourceLinks {
			if l.OriginalTon-derived < 0 {
				e.metrics.RecordDerivation(direction(target), "failed", 0, 0)
				return 0, &Error{Op: "Derive", ODID: od.ID, Category: od.Category, Cause: ErrNegativeLinkLoad}
			}
		}
	}

	od.Tons -= derived
	twin.Tons += derived

	for _, l := range sourceLinks {
		l.OriginalTon -= derived
		if l.OriginalTon < 0 {
			e.logger.Warn("link original load clamped to zero",
				logging.LinkID(l.ID), logging.Gauge(l.Gauge),
				logging.Float64("deficit", -l.OriginalTon))
			e.metrics.RecordClamp()
			l.OriginalTon = 0
		}
	}
	for _, l := range targetLinks {
		l.DerivedTon += derived
	}

	e.metrics.RecordDerivation(direction(target), "derived", derived, coeff)
	e.logger.Debug("derived od pair",
		logging.ODID(od.ID), logging.Category(od.Category),
		logging.Tons(derived), logging.Float64("coefficient", coeff),
		logging.String("direction", direction(target)))

	return derived, nil
}

// resolveLinks looks up every link on the od pair's path by id and the
// pair's gauge. A missing link is a data-integrity failure.
func resolveLinks(n *network.Network, od *network.ODPair) ([]*network.Link, error) {
	links := make([]*network.Link, len(od.LinkIDs))
	for i, id := range od.LinkIDs {
		l, err := n.Link(id, od.Gauge)
		if err != nil {
			return nil, &Error{Op: "Derive", ODID: od.ID, Category: od.Category, Cause: ErrLinkMissing}
		}
		links[i] = l
	}
	return links, nil
}
