package network

// LinkKey identifies a link variant inside one modal network. Gauge
// distinguishes parallel variants sharing the same id.
type LinkKey struct {
	ID    string
	Gauge string
}

// Link is a segment of one mode's network carrying an original load and a
// derived load. OriginalTon decreases as traffic leaves this mode,
// DerivedTon increases as traffic arrives from the other mode. Both fields
// stay non-negative; derivation operations enforce that.
type Link struct {
	ID          string
	Gauge       string
	Distance    float64
	OriginalTon float64
	DerivedTon  float64
}

// Key returns the lookup key of this link
func (l *Link) Key() LinkKey {
	return LinkKey{ID: l.ID, Gauge: l.Gauge}
}

// Tons returns the total load currently on the link
func (l *Link) Tons() float64 {
	return l.OriginalTon + l.DerivedTon
}
