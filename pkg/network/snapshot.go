package network

// linkLoad captures the mutable load of one link
type linkLoad struct {
	original float64
	derived  float64
}

// Snapshot captures the mutable tonnage state of a network: per-link loads
// and per-od tonnage. The structural state (links, paths, parameters) is
// immutable during a run and is not copied.
type Snapshot struct {
	linkLoads map[LinkKey]linkLoad
	odTons    map[ODKey]float64
}

// Snapshot copies the current tonnage state of the network
func (n *Network) Snapshot() *Snapshot {
	s := &Snapshot{
		linkLoads: make(map[LinkKey]linkLoad, len(n.links)),
		odTons:    make(map[ODKey]float64, len(n.odPairs)),
	}
	for key, l := range n.links {
		s.linkLoads[key] = linkLoad{original: l.OriginalTon, derived: l.DerivedTon}
	}
	for key, od := range n.odPairs {
		s.odTons[key] = od.Tons
	}
	return s
}

// Restore resets the network's tonnage state to a previously taken snapshot
func (n *Network) Restore(s *Snapshot) {
	for key, load := range s.linkLoads {
		if l, ok := n.links[key]; ok {
			l.OriginalTon = load.original
			l.DerivedTon = load.derived
		}
	}
	for key, tons := range s.odTons {
		if od, ok := n.odPairs[key]; ok {
			od.Tons = tons
		}
	}
}
