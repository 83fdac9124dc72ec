package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDerivation(t *testing.T) {
	r := NewRegistry()

	r.RecordDerivation("to_railway", "derived", 1500, 0.4)
	r.RecordDerivation("to_railway", "derived", 500, 0.2)
	r.RecordDerivation("to_railway", "skipped", 0, 0)

	derived := testutil.ToFloat64(r.DerivationsTotal.WithLabelValues("to_railway", "derived"))
	if derived != 2 {
		t.Errorf("derivations derived = %v, want 2", derived)
	}

	tons := testutil.ToFloat64(r.DerivedTonsTotal.WithLabelValues("to_railway"))
	if tons != 2000 {
		t.Errorf("derived tons = %v, want 2000", tons)
	}
}

func TestRecordCosts(t *testing.T) {
	r := NewRegistry()

	r.RecordCosts(120.5, 300.25)

	if got := testutil.ToFloat64(r.TotalCost); got != 420.75 {
		t.Errorf("total cost = %v, want 420.75", got)
	}
	if got := testutil.ToFloat64(r.NetworkCost.WithLabelValues("railway")); got != 120.5 {
		t.Errorf("railway cost = %v, want 120.5", got)
	}
}

func TestRecordSearchMove(t *testing.T) {
	r := NewRegistry()

	r.RecordSearchMove("to_railway", true)
	r.RecordSearchMove("to_roadway", false)
	r.RecordSearchMove("to_roadway", false)

	if got := testutil.ToFloat64(r.SearchMovesTotal.WithLabelValues("to_roadway", "false")); got != 2 {
		t.Errorf("rejected roadway moves = %v, want 2", got)
	}
}

func TestDefaultRegistrySingleton(t *testing.T) {
	a := DefaultRegistry()
	b := DefaultRegistry()
	if a != b {
		t.Error("DefaultRegistry should return the same instance")
	}
}
