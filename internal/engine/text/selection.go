package text

import "fmt"

// Selection is a range with direction.
// Anchor is the fixed end when extending; Active is the moving end (the caret).
type Selection struct {
	Anchor Position
	Active Position
}

// NewSelection creates a selection from anchor to active.
func NewSelection(anchor, active Position) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// NewCursor creates a zero-width selection at p.
func NewCursor(p Position) Selection {
	return Selection{Anchor: p, Active: p}
}

// Start returns the earlier of anchor and active.
func (s Selection) Start() Position {
	return EarlierOf(s.Anchor, s.Active)
}

// End returns the later of anchor and active.
func (s Selection) End() Position {
	return LaterOf(s.Anchor, s.Active)
}

// Range returns the selection as a normalized range.
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// IsEmpty returns true if the selection is a plain cursor.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// IsReversed returns true if the anchor comes after the active end.
func (s Selection) IsReversed() bool {
	return s.Active.Before(s.Anchor)
}

// Equals returns true if anchor and active both match.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Active == other.Active
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Active)
	}
	dir := "→"
	if s.IsReversed() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Active)
}
