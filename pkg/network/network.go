// Package network models one mode of a bimodal freight transport system:
// its links, its origin-destination pairs and its parameter table. Two
// Network instances (railway and roadway) are coupled by the derivation
// engine, which shifts tonnage between twin od pairs addressed by the same
// (id, category) key in either network.
package network

import (
	"github.com/lucfranzoi/freightnet/pkg/logging"
)

// Mode names one of the two transport modes
type Mode string

const (
	Railway Mode = "railway"
	Roadway Mode = "roadway"
)

// Network owns the link and od pair collections of one transport mode.
// Links are keyed by (id, gauge), od pairs by (id, category). Iteration
// order over both collections is insertion order, so runs are deterministic.
type Network struct {
	mode      Mode
	params    *ParamStore
	links     map[LinkKey]*Link
	linkOrder []LinkKey
	odPairs   map[ODKey]*ODPair
	odOrder   []ODKey
	logger    logging.Logger
}

// New creates an empty modal network
func New(mode Mode, params *ParamStore, logger logging.Logger) *Network {
	if params == nil {
		params = NewParamStore()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Network{
		mode:    mode,
		params:  params,
		links:   make(map[LinkKey]*Link),
		odPairs: make(map[ODKey]*ODPair),
		logger:  logger.With(logging.Component("network"), logging.Mode(string(mode))),
	}
}

// Mode returns the transport mode of this network
func (n *Network) Mode() Mode {
	return n.mode
}

// Params returns the parameter store of this network
func (n *Network) Params() *ParamStore {
	return n.params
}

// AddLink registers a link variant. Duplicate (id, gauge) keys are rejected.
func (n *Network) AddLink(l *Link) error {
	key := l.Key()
	if _, exists := n.links[key]; exists {
		return &Error{Op: "AddLink", Entity: "link", Key: l.ID, Cause: ErrDuplicateLink}
	}
	n.links[key] = l
	n.linkOrder = append(n.linkOrder, key)
	return nil
}

// Link returns the link variant with the given id and gauge
func (n *Network) Link(id, gauge string) (*Link, error) {
	l, ok := n.links[LinkKey{ID: id, Gauge: gauge}]
	if !ok {
		return nil, &Error{Op: "Link", Entity: "link", Key: id, Cause: ErrLinkNotFound}
	}
	return l, nil
}

// Links returns all links in insertion order
func (n *Network) Links() []*Link {
	out := make([]*Link, 0, len(n.linkOrder))
	for _, key := range n.linkOrder {
		out = append(out, n.links[key])
	}
	return out
}

// AddODPair registers an od pair. Duplicate (id, category) keys are rejected.
func (n *Network) AddODPair(od *ODPair) error {
	key := od.Key()
	if _, exists := n.odPairs[key]; exists {
		return &Error{Op: "AddODPair", Entity: "od", Key: od.ID, Cause: ErrDuplicateODPair}
	}
	n.odPairs[key] = od
	n.odOrder = append(n.odOrder, key)
	return nil
}

// ODPair returns the od pair with the given id and category
func (n *Network) ODPair(id string, category int) (*ODPair, bool) {
	od, ok := n.odPairs[ODKey{ID: id, Category: category}]
	return od, ok
}

// ODPairs returns all od pairs in insertion order
func (n *Network) ODPairs() []*ODPair {
	out := make([]*ODPair, 0, len(n.odOrder))
	for _, key := range n.odOrder {
		out = append(out, n.odPairs[key])
	}
	return out
}

// ODPairsByID returns every od pair sharing the given id, across categories
func (n *Network) ODPairsByID(id string) []*ODPair {
	var out []*ODPair
	for _, key := range n.odOrder {
		if key.ID == id {
			out = append(out, n.odPairs[key])
		}
	}
	return out
}

// PathDistance returns the path distance of the od pair addressed by
// (id, category), and false when the pair is missing or has no operable
// path in this network.
func (n *Network) PathDistance(id string, category int) (float64, bool) {
	od, ok := n.ODPair(id, category)
	if !ok || !od.HasPath() {
		return 0, false
	}
	return od.Distance, true
}

// HasPath reports whether this network has an operable path for the od pair
// addressed by (id, category)
func (n *Network) HasPath(id string, category int) bool {
	_, ok := n.PathDistance(id, category)
	return ok
}

// TotalTons returns the total tonnage over all od pairs
func (n *Network) TotalTons() float64 {
	var total float64
	for _, key := range n.odOrder {
		total += n.odPairs[key].Tons
	}
	return total
}

// Logger returns the network's logger
func (n *Network) Logger() logging.Logger {
	return n.logger
}
