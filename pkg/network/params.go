package network

import (
	"fmt"
	"strconv"
)

// Well-known parameter names consulted by the derivation engine
const (
	ParamMinTonsToDerive   = "min_tons_to_derive"
	ParamMinDistToDerive   = "min_dist_to_derive"
	ParamMaxTonsToDerive   = "max_tons_to_derive"
	ParamMaxDistToDerive   = "max_dist_to_derive"
	ParamMaxDerivation     = "max_derivation"
	ParamMaxPathDifference = "max_path_difference"
	ParamMobilityCostTK    = "mobility_cost_tk"
	ParamInfrastCostTK     = "infrast_cost_tk"
)

// Parameter is a named scalar configuration value. Immutable after load.
type Parameter struct {
	Name        string
	Value       float64
	Description string
}

// ParamStore holds the named parameters of one modal network. Read-only
// once a run begins.
type ParamStore struct {
	params map[string]Parameter
}

// NewParamStore creates an empty parameter store
func NewParamStore() *ParamStore {
	return &ParamStore{params: make(map[string]Parameter)}
}

// Add registers a parameter. Later additions with the same name win, so load
// order decides on duplicate input rows.
func (s *ParamStore) Add(p Parameter) {
	s.params[p.Name] = p
}

// Get returns the value of a parameter by exact name
func (s *ParamStore) Get(name string) (float64, bool) {
	p, ok := s.params[name]
	return p.Value, ok
}

// GetDefault returns the value of a parameter, or def when absent
func (s *ParamStore) GetDefault(name string, def float64) float64 {
	if v, ok := s.Get(name); ok {
		return v
	}
	return def
}

// Require returns the value of a parameter, or an error when absent
func (s *ParamStore) Require(name string) (float64, error) {
	v, ok := s.Get(name)
	if !ok {
		return 0, &Error{Op: "Require", Entity: "parameter", Key: name, Cause: ErrParamMissing}
	}
	return v, nil
}

// MaxDerivation resolves the derivation cap for a product category: the
// category-specific "max_derivation_<category>" when present, the generic
// "max_derivation" otherwise.
func (s *ParamStore) MaxDerivation(category int) (float64, error) {
	name := ParamMaxDerivation + "_" + strconv.Itoa(category)
	if v, ok := s.Get(name); ok {
		return v, nil
	}
	return s.Require(ParamMaxDerivation)
}

// Len returns the number of parameters in the store
func (s *ParamStore) Len() int {
	return len(s.params)
}

// String implements fmt.Stringer
func (p Parameter) String() string {
	return fmt.Sprintf("%s=%g (%s)", p.Name, p.Value, p.Description)
}
