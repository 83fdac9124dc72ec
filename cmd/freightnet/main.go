package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/lucfranzoi/freightnet/pkg/derivation"
	"github.com/lucfranzoi/freightnet/pkg/freight"
	"github.com/lucfranzoi/freightnet/pkg/loader"
	"github.com/lucfranzoi/freightnet/pkg/logging"
	"github.com/lucfranzoi/freightnet/pkg/metrics"
	"github.com/lucfranzoi/freightnet/pkg/network"
	"github.com/lucfranzoi/freightnet/pkg/report"
)

func main() {
	scenarioPath := flag.String("scenario", "scenario.yaml", "Path to the YAML scenario file")
	mode := flag.String("mode", "minimize", "Operation: cost | derive-rail | derive-road | minimize | free-link")
	linkID := flag.String("link", "", "Railway link id for free-link mode")
	gauge := flag.String("gauge", "", "Railway link gauge for free-link mode")
	flag.Parse()

	scenario, err := loader.LoadScenario(*scenarioPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load scenario: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(scenario.LogLevel))
	reg := metrics.DefaultRegistry()

	if scenario.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", reg.Handler())
		go func() {
			logger.Info("metrics listener starting", logging.String("addr", scenario.MetricsAddr))
			if err := http.ListenAndServe(scenario.MetricsAddr, mux); err != nil {
				logger.Error("metrics listener failed", logging.Error(err))
			}
		}()
	}

	rail, err := loader.LoadNetwork(network.Railway, scenario.Railway, logger)
	if err != nil {
		logger.Error("load railway network", logging.Error(err))
		os.Exit(1)
	}
	road, err := loader.LoadNetwork(network.Roadway, scenario.Roadway, logger)
	if err != nil {
		logger.Error("load roadway network", logging.Error(err))
		os.Exit(1)
	}

	engine := derivation.New(derivation.Config{
		Capacity:   scenario.CapacityPolicy(),
		Thresholds: scenario.ThresholdSource(),
		Workers:    scenario.Engine.Workers,
		Logger:     logger,
		Metrics:    reg,
	})
	fn := freight.New(rail, road, engine, logger, reg)

	entry, err := run(fn, scenario, *mode, *linkID, *gauge, logger)
	if err != nil {
		logger.Error("run failed", logging.String("mode", *mode), logging.Error(err))
		os.Exit(1)
	}

	if scenario.Report.Path != "" {
		opts := report.WriteOptions{Append: scenario.Report.Append, Compress: scenario.Report.Compress}
		if err := report.Write(scenario.Report.Path, entry, opts); err != nil {
			logger.Error("write report", logging.Error(err))
			os.Exit(1)
		}
		logger.Info("report written",
			logging.String("path", scenario.Report.Path),
			logging.String("entry_id", entry.ID),
		)
	}
}

func run(fn *freight.FreightNetwork, scenario *loader.Scenario, mode, linkID, gauge string, logger logging.Logger) (report.Entry, error) {
	description := scenario.Report.Description
	if description == "" {
		description = mode
	}

	switch mode {
	case "cost":
		cost := fn.CostNetwork()
		logger.Info("network costed", logging.Cost(cost))

	case "derive-rail":
		summary, err := fn.DeriveAllToRailway()
		if err != nil {
			return report.Entry{}, err
		}
		logSummary(logger, "derived to railway", summary)

	case "derive-road":
		summary, err := fn.DeriveAllToRoadway()
		if err != nil {
			return report.Entry{}, err
		}
		logSummary(logger, "derived to roadway", summary)

	case "free-link":
		if linkID == "" || gauge == "" {
			return report.Entry{}, fmt.Errorf("free-link mode requires -link and -gauge")
		}
		summary, err := fn.FreeRailwayLink(linkID, gauge)
		if err != nil {
			return report.Entry{}, err
		}
		logSummary(logger, "railway link freed", summary)

	case "minimize":
		result, err := fn.MinimizeCost(scenario.SearchConfig())
		if err != nil {
			return report.Entry{}, err
		}
		logger.Info("cost minimization finished",
			logging.String("state", result.State.String()),
			logging.Int("iterations", result.Iterations),
			logging.Float64("initial_cost", result.InitialCost),
			logging.Float64("best_cost", result.BestCost),
		)
		entry := report.NewEntry(description, fn.Rail(), fn.Road())
		entry.Search = searchOutcome(result)
		return entry, nil

	default:
		return report.Entry{}, fmt.Errorf("unknown mode %q", mode)
	}

	return report.NewEntry(description, fn.Rail(), fn.Road()), nil
}

func logSummary(logger logging.Logger, msg string, s derivation.Summary) {
	logger.Info(msg,
		logging.Int("considered", s.Considered),
		logging.Int("derived", s.Derived),
		logging.Tons(s.Tons),
	)
}

func searchOutcome(r *freight.SearchResult) *report.SearchOutcome {
	out := &report.SearchOutcome{
		State:       r.State.String(),
		Iterations:  r.Iterations,
		InitialCost: r.InitialCost,
		BestCost:    r.BestCost,
		MinCost:     r.MinCost,
		MaxCost:     r.MaxCost,
	}
	for _, m := range r.Moves {
		out.Moves = append(out.Moves, m.String())
	}
	return out
}
