package derivation

import (
	"testing"

	"github.com/lucfranzoi/freightnet/pkg/network"
)

// testParams builds the parameter set used across engine tests:
// min_tons=100, min_dist=50, max_tons=2000, max_dist=500,
// max_derivation=0.8, max_path_difference=0.4.
func testParams() *network.ParamStore {
	s := network.NewParamStore()
	s.Add(network.Parameter{Name: network.ParamMinTonsToDerive, Value: 100})
	s.Add(network.Parameter{Name: network.ParamMinDistToDerive, Value: 50})
	s.Add(network.Parameter{Name: network.ParamMaxTonsToDerive, Value: 2000})
	s.Add(network.Parameter{Name: network.ParamMaxDistToDerive, Value: 500})
	s.Add(network.Parameter{Name: network.ParamMaxDerivation, Value: 0.8})
	s.Add(network.Parameter{Name: network.ParamMaxPathDifference, Value: 0.4})
	return s
}

// newBimodal builds a road network with one od pair (id "1-3", category 3,
// 500 t over 120 km) and a rail network holding its twin with an operable
// 115 km path. Road links carry the od pair's tonnage as original load.
func newBimodal(t *testing.T) (rail, road *network.Network) {
	t.Helper()

	rail = network.New(network.Railway, testParams(), nil)
	for _, l := range []*network.Link{
		{ID: "1-2", Gauge: "ancha", Distance: 55},
		{ID: "2-3", Gauge: "ancha", Distance: 60},
	} {
		if err := rail.AddLink(l); err != nil {
			t.Fatalf("rail AddLink: %v", err)
		}
	}
	twin := mustOD(t, "1-3", 0, 3, "1-2-3", "ancha", 115)
	if err := rail.AddODPair(twin); err != nil {
		t.Fatalf("rail AddODPair: %v", err)
	}

	road = network.New(network.Roadway, testParams(), nil)
	for _, l := range []*network.Link{
		{ID: "1-2", Gauge: "unica", Distance: 60, OriginalTon: 500},
		{ID: "2-3", Gauge: "unica", Distance: 60, OriginalTon: 500},
	} {
		if err := road.AddLink(l); err != nil {
			t.Fatalf("road AddLink: %v", err)
		}
	}
	od := mustOD(t, "1-3", 500, 3, "1-2-3", "unica", 120)
	if err := road.AddODPair(od); err != nil {
		t.Fatalf("road AddODPair: %v", err)
	}

	return rail, road
}

// mustOD builds an od pair with a path already attached
func mustOD(t *testing.T, id string, tons float64, category int, path, gauge string, distance float64) *network.ODPair {
	t.Helper()
	od, err := network.NewODPair(id, tons, category)
	if err != nil {
		t.Fatalf("NewODPair(%s): %v", id, err)
	}
	if err := od.SetPath(path, gauge); err != nil {
		t.Fatalf("SetPath(%s): %v", path, err)
	}
	od.Distance = distance
	return od
}

func newTestEngine() *Engine {
	return New(Config{Workers: 1})
}
