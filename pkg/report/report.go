// Package report captures the state of both modal networks after a run
// (tonnage, link loads, costs) and persists it as JSON or CSV,
// creating a new report file or appending to an existing one.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucfranzoi/freightnet/pkg/network"
)

// LinkState is the persisted load of one link variant.
type LinkState struct {
	ID          string  `json:"id"`
	Gauge       string  `json:"gauge"`
	Distance    float64 `json:"distance"`
	OriginalTon float64 `json:"original_ton"`
	DerivedTon  float64 `json:"derived_ton"`
	TotalTon    float64 `json:"total_ton"`
}

// ODState is the persisted tonnage of one od pair.
type ODState struct {
	ID       string  `json:"id"`
	Category int     `json:"category"`
	Tons     float64 `json:"tons"`
	Distance float64 `json:"distance"`
	Gauge    string  `json:"gauge,omitempty"`
}

// NetworkSnapshot is the full state of one modal network.
type NetworkSnapshot struct {
	Mode               string      `json:"mode"`
	MobilityCost       float64     `json:"mobility_cost"`
	InfrastructureCost float64     `json:"infrastructure_cost"`
	Cost               float64     `json:"cost"`
	TotalTons          float64     `json:"total_tons"`
	Links              []LinkState `json:"links"`
	ODPairs            []ODState   `json:"od_pairs"`
}

// SearchOutcome summarizes a cost minimization run.
type SearchOutcome struct {
	State       string   `json:"state"`
	Iterations  int      `json:"iterations"`
	InitialCost float64  `json:"initial_cost"`
	BestCost    float64  `json:"best_cost"`
	MinCost     float64  `json:"min_cost"`
	MaxCost     float64  `json:"max_cost"`
	Moves       []string `json:"moves,omitempty"`
}

// Entry is one report record: both networks at a point in time, plus an
// operator-supplied description and the search outcome when one ran.
type Entry struct {
	ID          string          `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Description string          `json:"description,omitempty"`
	Railway     NetworkSnapshot `json:"railway"`
	Roadway     NetworkSnapshot `json:"roadway"`
	TotalCost   float64         `json:"total_cost"`
	Search      *SearchOutcome  `json:"search,omitempty"`
}

// Report is the on-disk document: an ordered list of entries.
type Report struct {
	Entries []Entry `json:"entries"`
}

// Snapshot captures the current state of one network.
func Snapshot(n *network.Network) NetworkSnapshot {
	snap := NetworkSnapshot{
		Mode:               string(n.Mode()),
		MobilityCost:       n.MobilityCost(),
		InfrastructureCost: n.InfrastructureCost(),
		Cost:               n.Cost(),
		TotalTons:          n.TotalTons(),
	}
	for _, l := range n.Links() {
		snap.Links = append(snap.Links, LinkState{
			ID:          l.ID,
			Gauge:       l.Gauge,
			Distance:    l.Distance,
			OriginalTon: l.OriginalTon,
			DerivedTon:  l.DerivedTon,
			TotalTon:    l.Tons(),
		})
	}
	for _, od := range n.ODPairs() {
		snap.ODPairs = append(snap.ODPairs, ODState{
			ID:       od.ID,
			Category: od.Category,
			Tons:     od.Tons,
			Distance: od.Distance,
			Gauge:    od.Gauge,
		})
	}
	return snap
}

// NewEntry builds a report entry for both networks with a fresh id.
func NewEntry(description string, rail, road *network.Network) Entry {
	railSnap := Snapshot(rail)
	roadSnap := Snapshot(road)
	return Entry{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now().UTC(),
		Description: description,
		Railway:     railSnap,
		Roadway:     roadSnap,
		TotalCost:   railSnap.Cost + roadSnap.Cost,
	}
}
