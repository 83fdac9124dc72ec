package loader

import (
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/network"
)

// NetworkInput holds the parsed record sets of one modal network.
type NetworkInput struct {
	Params []ParamRecord
	Links  []LinkRecord
	ODs    []ODRecord
	Paths  []PathRecord
}

// BuildNetwork assembles a network from its record sets: registers
// parameters and links, creates od pairs, attaches every path row to the
// od pairs sharing its id, then walks each path to sum the od distance
// and add the pair's tonnage to the original load of every link on it.
// A path referencing an unknown (link, gauge) is a data integrity error.
func BuildNetwork(mode network.Mode, in NetworkInput, logger logging.Logger) (*network.Network, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	params := network.NewParamStore()
	for _, p := range in.Params {
		params.Add(network.Parameter{Name: p.ID, Value: p.Value, Description: p.Description})
	}

	n := network.New(mode, params, logger)

	for _, l := range in.Links {
		if err := n.AddLink(&network.Link{ID: l.ID, Gauge: l.Gauge, Distance: l.Distance}); err != nil {
			return nil, err
		}
	}

	for _, o := range in.ODs {
		od, err := network.NewODPair(o.ID, o.Tons, o.Category)
		if err != nil {
			return nil, err
		}
		if err := n.AddODPair(od); err != nil {
			return nil, err
		}
	}

	// Paths apply to every category sharing the od id.
	for _, p := range in.Paths {
		for _, od := range n.ODPairsByID(p.ID) {
			if err := od.SetPath(p.Path, p.Gauge); err != nil {
				return nil, err
			}
		}
	}

	// Original-load assignment: od distance is the sum of its link
	// distances, and each link accumulates the pair's tonnage.
	for _, od := range n.ODPairs() {
		if !od.HasPath() {
			continue
		}
		var dist float64
		for _, linkID := range od.LinkIDs {
			link, err := n.Link(linkID, od.Gauge)
			if err != nil {
				return nil, &network.Error{
					Op:     "BuildNetwork",
					Entity: "link",
					Key:    linkID,
					Cause:  network.ErrLinkNotFound,
				}
			}
			dist += link.Distance
			link.OriginalTon += od.Tons
		}
		od.Distance = dist
	}

	logger.Info("network assembled",
		logging.Mode(string(mode)),
		logging.Int("links", len(n.Links())),
		logging.Int("od_pairs", len(n.ODPairs())),
		logging.Int("parameters", params.Len()),
	)
	return n, nil
}
