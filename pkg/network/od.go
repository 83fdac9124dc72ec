package network

import (
	"fmt"
	"strconv"
	"strings"
)

// ODKey identifies an od pair inside one modal network. The same key in the
// opposing network addresses the twin pair.
type ODKey struct {
	ID       string
	Category int
}

// ODPair is an origin-destination flow record. Category 0 marks a
// non-derivable product class. Tons is the only field mutated after network
// assembly, and only by derivation operations.
type ODPair struct {
	ID          string
	Origin      int
	Destination int
	Tons        float64
	Category    int
	Gauge       string
	Distance    float64
	Path        string
	PathNodes   []int
	LinkIDs     []string
}

// NewODPair builds an od pair from an "origin-destination" id string, e.g.
// "70-68". Leading zeros in node ids are dropped by integer parsing.
func NewODPair(id string, tons float64, category int) (*ODPair, error) {
	origin, destination, err := parseODID(id)
	if err != nil {
		return nil, &Error{Op: "NewODPair", Entity: "od", Key: id, Cause: err}
	}

	return &ODPair{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Tons:        tons,
		Category:    category,
	}, nil
}

func parseODID(id string) (int, int, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"origin-destination\", got %q", ErrBadODID, id)
	}
	origin, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: origin %q", ErrBadODID, parts[0])
	}
	destination, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: destination %q", ErrBadODID, parts[1])
	}
	return origin, destination, nil
}

// Key returns the lookup key of this od pair
func (od *ODPair) Key() ODKey {
	return ODKey{ID: od.ID, Category: od.Category}
}

// Intrazone reports whether origin and destination are the same node.
// Intrazone pairs are never derivable.
func (od *ODPair) Intrazone() bool {
	return od.Origin == od.Destination
}

// SetPath assigns a delimited node path (e.g. "068-069-070") and a gauge to
// the od pair, deriving the ordered link id sequence from consecutive node
// pairs: "68-69", "69-70".
func (od *ODPair) SetPath(path, gauge string) error {
	parts := strings.Split(path, "-")
	if len(parts) < 2 {
		return &Error{Op: "SetPath", Entity: "od", Key: od.ID,
			Cause: fmt.Errorf("%w: need at least two nodes, got %q", ErrBadPath, path)}
	}

	nodes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return &Error{Op: "SetPath", Entity: "od", Key: od.ID,
				Cause: fmt.Errorf("%w: node %q", ErrBadPath, p)}
		}
		nodes[i] = n
	}

	links := make([]string, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		links[i] = fmt.Sprintf("%d-%d", nodes[i], nodes[i+1])
	}

	od.Path = path
	od.Gauge = gauge
	od.PathNodes = nodes
	od.LinkIDs = links
	return nil
}

// HasPath reports whether the od pair has an operable path assigned
func (od *ODPair) HasPath() bool {
	return len(od.LinkIDs) > 0
}

// UsesLink reports whether the od pair's path traverses the given link id
func (od *ODPair) UsesLink(linkID string) bool {
	for _, id := range od.LinkIDs {
		if id == linkID {
			return true
		}
	}
	return false
}
