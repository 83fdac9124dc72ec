package network

import (
	"errors"
	"reflect"
	"testing"
)

// TestODPairConstruction checks the id/path parsing contract: "70-68" with
// path "068-069-070" yields nodes 70 and 68, path nodes [68 69 70] and
// links ["68-69" "69-70"].
func TestODPairConstruction(t *testing.T) {
	od, err := NewODPair("70-68", 333906, 3)
	if err != nil {
		t.Fatalf("NewODPair failed: %v", err)
	}

	if od.Origin != 70 || od.Destination != 68 {
		t.Errorf("nodes = (%d, %d), want (70, 68)", od.Origin, od.Destination)
	}

	if err := od.SetPath("068-069-070", "ancha"); err != nil {
		t.Fatalf("SetPath failed: %v", err)
	}

	if od.Path != "068-069-070" {
		t.Errorf("path = %q, want %q", od.Path, "068-069-070")
	}
	if !reflect.DeepEqual(od.PathNodes, []int{68, 69, 70}) {
		t.Errorf("path nodes = %v, want [68 69 70]", od.PathNodes)
	}
	if !reflect.DeepEqual(od.LinkIDs, []string{"68-69", "69-70"}) {
		t.Errorf("links = %v, want [68-69 69-70]", od.LinkIDs)
	}
	if od.Gauge != "ancha" {
		t.Errorf("gauge = %q, want ancha", od.Gauge)
	}
}

func TestODPairBadID(t *testing.T) {
	cases := []string{"", "70", "70-68-12", "a-b", "70-"}
	for _, id := range cases {
		if _, err := NewODPair(id, 100, 1); !errors.Is(err, ErrBadODID) {
			t.Errorf("NewODPair(%q): error = %v, want ErrBadODID", id, err)
		}
	}
}

func TestODPairBadPath(t *testing.T) {
	od, err := NewODPair("1-2", 100, 1)
	if err != nil {
		t.Fatalf("NewODPair failed: %v", err)
	}

	if err := od.SetPath("001", "ancha"); !errors.Is(err, ErrBadPath) {
		t.Errorf("single-node path: error = %v, want ErrBadPath", err)
	}
	if err := od.SetPath("001-abc", "ancha"); !errors.Is(err, ErrBadPath) {
		t.Errorf("non-numeric node: error = %v, want ErrBadPath", err)
	}
}

func TestODPairIntrazone(t *testing.T) {
	od, err := NewODPair("5-5", 100, 1)
	if err != nil {
		t.Fatalf("NewODPair failed: %v", err)
	}
	if !od.Intrazone() {
		t.Error("5-5 should be intrazone")
	}

	od2, _ := NewODPair("5-6", 100, 1)
	if od2.Intrazone() {
		t.Error("5-6 should not be intrazone")
	}
}

func TestODPairUsesLink(t *testing.T) {
	od, _ := NewODPair("1-3", 100, 1)
	if err := od.SetPath("1-2-3", "media"); err != nil {
		t.Fatalf("SetPath failed: %v", err)
	}

	if !od.UsesLink("1-2") || !od.UsesLink("2-3") {
		t.Error("od should use links 1-2 and 2-3")
	}
	if od.UsesLink("3-4") {
		t.Error("od should not use link 3-4")
	}
}
