package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucfranzoi/freightnet/pkg/derivation"
	"github.com/lucfranzoi/freightnet/pkg/freight"
	"github.com/lucfranzoi/freightnet/pkg/loader"
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/metrics"
	"github.com/lucfranzoi/freightnet/pkg/network"
	"github.com/lucfranzoi/freightnet/pkg/report"
)

const paramsCSV = `id,value,description
min_tons_to_derive,100,minimum tonnage for a pair to derive
min_dist_to_derive,50,minimum distance for a pair to derive
max_tons_to_derive,2000,upper bound of the interpolation region
max_dist_to_derive,500,upper bound of the interpolation region
max_derivation,0.8,largest derivable share
max_path_difference,0.4,tolerated modal path length ratio
`

const railLinksCSV = `id,distance,gauge
1-2,55,ancha
2-3,60,ancha
`

const railODsCSV = `id,tons,category
1-3,0,3
`

const railPathsCSV = `id,path,gauge
1-3,001-002-003,ancha
`

const roadLinksCSV = `id,distance,gauge
1-2,60,unica
2-3,60,unica
`

const roadODsCSV = `id,tons,category
1-3,500,3
`

const roadPathsCSV = `id,path,gauge
1-3,001-002-003,unica
`

// writeInputs lays out the CSV inputs of both modes and a scenario file
// in a temp dir, returning the scenario path.
func writeInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"rail_params.csv": paramsCSV,
		"rail_links.csv":  railLinksCSV,
		"rail_od.csv":     railODsCSV,
		"rail_paths.csv":  railPathsCSV,
		"road_params.csv": paramsCSV,
		"road_links.csv":  roadLinksCSV,
		"road_od.csv":     roadODsCSV,
		"road_paths.csv":  roadPathsCSV,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	scenario := `railway:
  params: ` + filepath.Join(dir, "rail_params.csv") + `
  links: ` + filepath.Join(dir, "rail_links.csv") + `
  od_pairs: ` + filepath.Join(dir, "rail_od.csv") + `
  paths: ` + filepath.Join(dir, "rail_paths.csv") + `
roadway:
  params: ` + filepath.Join(dir, "road_params.csv") + `
  links: ` + filepath.Join(dir, "road_links.csv") + `
  od_pairs: ` + filepath.Join(dir, "road_od.csv") + `
  paths: ` + filepath.Join(dir, "road_paths.csv") + `
engine:
  workers: 2
search:
  max_iterations: 5
report:
  path: ` + filepath.Join(dir, "report.json") + `
`
	scenarioPath := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(scenarioPath, []byte(scenario), 0o644))
	return scenarioPath
}

// TestFullScenarioRun drives the whole pipeline the way cmd/freightnet
// does: scenario file, CSV loaders, network assembly, cost minimization
// and report persistence.
func TestFullScenarioRun(t *testing.T) {
	scenarioPath := writeInputs(t)

	t.Log("Step 1: loading scenario...")
	scenario, err := loader.LoadScenario(scenarioPath)
	require.NoError(t, err)
	require.Equal(t, derivation.ClampToZero, scenario.CapacityPolicy())

	t.Log("Step 2: assembling modal networks...")
	logger := logging.NewNopLogger()
	rail, err := loader.LoadNetwork(network.Railway, scenario.Railway, logger)
	require.NoError(t, err)
	road, err := loader.LoadNetwork(network.Roadway, scenario.Roadway, logger)
	require.NoError(t, err)

	railOD, ok := rail.ODPair("1-3", 3)
	require.True(t, ok)
	assert.InDelta(t, 115, railOD.Distance, 1e-9, "rail od distance is the sum of its link distances")
	roadOD, ok := road.ODPair("1-3", 3)
	require.True(t, ok)
	assert.InDelta(t, 500, roadOD.Tons, 1e-9)

	roadLink, err := road.Link("1-2", "unica")
	require.NoError(t, err)
	assert.InDelta(t, 500, roadLink.OriginalTon, 1e-9, "road link carries the pair's original load")

	t.Log("Step 3: minimizing total cost...")
	engine := derivation.New(derivation.Config{
		Capacity:   scenario.CapacityPolicy(),
		Thresholds: scenario.ThresholdSource(),
		Workers:    scenario.Engine.Workers,
		Logger:     logger,
		Metrics:    metrics.NewRegistry(),
	})
	fn := freight.New(rail, road, engine, logger, metrics.NewRegistry())

	initialCost := fn.CostNetwork()
	result, err := fn.MinimizeCost(scenario.SearchConfig())
	require.NoError(t, err)

	assert.Equal(t, freight.StateTerminal, result.State)
	assert.Less(t, result.BestCost, result.InitialCost, "rail is cheaper here, so deriving must improve cost")
	assert.InDelta(t, initialCost, result.InitialCost, 1e-9)
	assert.GreaterOrEqual(t, result.Iterations, 1)
	require.NotEmpty(t, result.Moves)
	for _, move := range result.Moves {
		assert.Equal(t, freight.ToRailway, move, "all accepted moves shift freight to rail")
	}

	// Tonnage is conserved across the twin pairs.
	assert.InDelta(t, 500, railOD.Tons+roadOD.Tons, 1e-9)
	assert.Greater(t, railOD.Tons, 0.0)

	t.Log("Step 4: writing and re-reading the report...")
	entry := report.NewEntry("e2e run", rail, road)
	entry.Search = &report.SearchOutcome{
		State:       result.State.String(),
		Iterations:  result.Iterations,
		InitialCost: result.InitialCost,
		BestCost:    result.BestCost,
		MinCost:     result.MinCost,
		MaxCost:     result.MaxCost,
	}
	require.NoError(t, report.Write(scenario.Report.Path, entry, report.WriteOptions{}))

	loaded, err := report.Read(scenario.Report.Path)
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 1)
	got := loaded.Entries[0]
	assert.Equal(t, entry.ID, got.ID)
	assert.InDelta(t, entry.TotalCost, got.TotalCost, 1e-9)
	require.NotNil(t, got.Search)
	assert.Equal(t, result.Iterations, got.Search.Iterations)
}

// TestFreeRailwayLinkScenario clears a rail link end to end: every pair
// crossing it returns its derived tonnage to the road network.
func TestFreeRailwayLinkScenario(t *testing.T) {
	scenarioPath := writeInputs(t)
	scenario, err := loader.LoadScenario(scenarioPath)
	require.NoError(t, err)

	logger := logging.NewNopLogger()
	rail, err := loader.LoadNetwork(network.Railway, scenario.Railway, logger)
	require.NoError(t, err)
	road, err := loader.LoadNetwork(network.Roadway, scenario.Roadway, logger)
	require.NoError(t, err)

	engine := derivation.New(derivation.Config{Workers: 1, Logger: logger})
	fn := freight.New(rail, road, engine, logger, nil)

	_, err = fn.MinimizeCost(scenario.SearchConfig())
	require.NoError(t, err)

	railOD, _ := rail.ODPair("1-3", 3)
	require.Greater(t, railOD.Tons, 0.0, "minimization must have shifted tonnage to rail")

	shifted := railOD.Tons
	summary, err := fn.FreeRailwayLink("1-2", "ancha")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Derived)
	assert.InDelta(t, shifted, summary.Tons, 1e-9)

	roadOD, _ := road.ODPair("1-3", 3)
	assert.InDelta(t, 0, railOD.Tons, 1e-9, "freed link leaves no rail tonnage on its pairs")
	assert.InDelta(t, 500, roadOD.Tons, 1e-9)

	// The reversed tonnage arrives on the road path as derived load.
	roadLink, err := road.Link("1-2", "unica")
	require.NoError(t, err)
	assert.InDelta(t, shifted, roadLink.DerivedTon, 1e-9)
}
