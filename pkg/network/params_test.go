package network

import (
	"errors"
	"testing"
)

func newTestStore() *ParamStore {
	s := NewParamStore()
	s.Add(Parameter{Name: ParamMaxDerivation, Value: 0.8, Description: "generic derivation cap"})
	s.Add(Parameter{Name: "max_derivation_7", Value: 0.5, Description: "cap for category 7"})
	s.Add(Parameter{Name: ParamMinTonsToDerive, Value: 100})
	return s
}

func TestParamStoreGet(t *testing.T) {
	s := newTestStore()

	v, ok := s.Get(ParamMinTonsToDerive)
	if !ok || v != 100 {
		t.Errorf("Get(min_tons_to_derive) = %v, %v; want 100, true", v, ok)
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) should report absence")
	}

	if got := s.GetDefault("missing", 42); got != 42 {
		t.Errorf("GetDefault = %v, want 42", got)
	}
}

func TestParamStoreRequire(t *testing.T) {
	s := newTestStore()

	if _, err := s.Require(ParamMaxDerivation); err != nil {
		t.Errorf("Require(max_derivation) failed: %v", err)
	}

	_, err := s.Require("max_path_difference")
	if !errors.Is(err, ErrParamMissing) {
		t.Errorf("Require(missing): error = %v, want ErrParamMissing", err)
	}
}

// TestMaxDerivationFallback checks the category-specific override chain:
// max_derivation_7 wins for category 7, everything else falls back to
// max_derivation.
func TestMaxDerivationFallback(t *testing.T) {
	s := newTestStore()

	v, err := s.MaxDerivation(7)
	if err != nil || v != 0.5 {
		t.Errorf("MaxDerivation(7) = %v, %v; want 0.5, nil", v, err)
	}

	v, err = s.MaxDerivation(3)
	if err != nil || v != 0.8 {
		t.Errorf("MaxDerivation(3) = %v, %v; want 0.8, nil", v, err)
	}
}

func TestMaxDerivationMissingGeneric(t *testing.T) {
	s := NewParamStore()
	if _, err := s.MaxDerivation(1); !errors.Is(err, ErrParamMissing) {
		t.Errorf("MaxDerivation without generic cap: error = %v, want ErrParamMissing", err)
	}
}
