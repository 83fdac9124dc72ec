package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lucfranzoi/freightnet/pkg/derivation"
	"github.com/lucfranzoi/freightnet/pkg/freight"
	"github.com/lucfranzoi/freightnet/pkg/validation"
)

// Scenario is the YAML run configuration: where the modal inputs live,
// how the derivation engine behaves, and how the search is bounded.
type Scenario struct {
	Railway NetworkFiles `yaml:"railway"`
	Roadway NetworkFiles `yaml:"roadway"`

	Engine struct {
		CapacityPolicy  string `yaml:"capacity_policy"`  // clamp | reject
		ThresholdSource string `yaml:"threshold_source"` // target | source
		Workers         int    `yaml:"workers"`
	} `yaml:"engine"`

	Search struct {
		MaxIterations  int     `yaml:"max_iterations"`
		MinImprovement float64 `yaml:"min_improvement"`
	} `yaml:"search"`

	Report struct {
		Path        string `yaml:"path"`
		Append      bool   `yaml:"append"`
		Compress    bool   `yaml:"compress"`
		Description string `yaml:"description"`
	} `yaml:"report"`

	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// LoadScenario reads and validates a scenario file. Absent engine and
// search fields fall back to defaults before validation.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	s.applyDefaults()

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	if s.Engine.CapacityPolicy == "" {
		s.Engine.CapacityPolicy = "clamp"
	}
	if s.Engine.ThresholdSource == "" {
		s.Engine.ThresholdSource = "target"
	}
	if s.Engine.Workers == 0 {
		s.Engine.Workers = 1
	}
	def := freight.DefaultSearchConfig()
	if s.Search.MaxIterations == 0 {
		s.Search.MaxIterations = def.MaxIterations
	}
	if s.Search.MinImprovement == 0 {
		s.Search.MinImprovement = def.MinImprovement
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
}

// Validate checks the scenario and reports every violation at once.
func (s *Scenario) Validate() error {
	return validation.NewConfigValidator("Scenario").
		Required("railway.params", s.Railway.Params).
		Required("railway.links", s.Railway.Links).
		Required("railway.od_pairs", s.Railway.ODs).
		Required("railway.paths", s.Railway.Paths).
		Required("roadway.params", s.Roadway.Params).
		Required("roadway.links", s.Roadway.Links).
		Required("roadway.od_pairs", s.Roadway.ODs).
		Required("roadway.paths", s.Roadway.Paths).
		OneOf("engine.capacity_policy", s.Engine.CapacityPolicy, []string{"clamp", "reject"}).
		OneOf("engine.threshold_source", s.Engine.ThresholdSource, []string{"target", "source"}).
		Positive("engine.workers", s.Engine.Workers).
		RangeInt("search.max_iterations", s.Search.MaxIterations, 1, 1000).
		NonNegativeFloat("search.min_improvement", s.Search.MinImprovement).
		OneOf("log_level", s.LogLevel, []string{"debug", "info", "warn", "error"}).
		Validate()
}

// CapacityPolicy maps the scenario string to the engine option.
func (s *Scenario) CapacityPolicy() derivation.CapacityPolicy {
	if s.Engine.CapacityPolicy == "reject" {
		return derivation.RejectNegative
	}
	return derivation.ClampToZero
}

// ThresholdSource maps the scenario string to the engine option.
func (s *Scenario) ThresholdSource() derivation.ThresholdSource {
	if s.Engine.ThresholdSource == "source" {
		return derivation.SourceParams
	}
	return derivation.TargetParams
}

// SearchConfig maps the scenario search bounds to the search options.
func (s *Scenario) SearchConfig() freight.SearchConfig {
	return freight.SearchConfig{
		MaxIterations:  s.Search.MaxIterations,
		MinImprovement: s.Search.MinImprovement,
	}
}
