package text

import "fmt"

// Range is an ordered pair of positions with Start <= End.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two positions in either order.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// EmptyRange creates a zero-width range at p.
func EmptyRange(p Position) Range {
	return Range{Start: p, End: p}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains returns true if p lies within the range, both ends included.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && !p.After(r.End)
}

// ContainsRange returns true if other lies entirely within r.
func (r Range) ContainsRange(other Range) bool {
	return r.Contains(other.Start) && r.Contains(other.End)
}

// Intersection returns the overlap of r and other.
// ok is false when the ranges are disjoint.
func (r Range) Intersection(other Range) (Range, bool) {
	start := LaterOf(r.Start, other.Start)
	end := EarlierOf(r.End, other.End)
	if start.After(end) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Union returns the smallest range covering both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		Start: EarlierOf(r.Start, other.Start),
		End:   LaterOf(r.End, other.End),
	}
}

// Overlaps returns true if the ranges share more than a boundary point.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
