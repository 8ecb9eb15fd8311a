package edit

import (
	"fmt"

	"github.com/dshills/motion/internal/engine/text"
)

// Op is a single text operation.
// A nil Text denotes deletion of Range.
type Op struct {
	Range text.Range
	Text  *string

	// ForceMoveMarkers pushes carets sitting exactly at an insertion point past the
	// inserted text.
	ForceMoveMarkers bool
}

// NewText returns the replacement text, or "" for a deletion.
func (o Op) NewText() string {
	if o.Text == nil {
		return ""
	}
	return *o.Text
}

// IsDelete returns true if the operation removes text without replacement.
func (o Op) IsDelete() bool {
	return o.Text == nil || (*o.Text == "" && !o.Range.IsEmpty())
}

// IsInsert returns true if the operation inserts text at a single point.
func (o Op) IsInsert() bool {
	return o.Range.IsEmpty() && o.NewText() != ""
}

// IsNoOp returns true if applying the operation leaves the document unchanged.
func (o Op) IsNoOp() bool {
	return o.Range.IsEmpty() && o.NewText() == ""
}

// End returns the position just after the new text once the operation is applied.
func (o Op) End() text.Position {
	return o.Range.Start.AdvanceByText(o.NewText())
}

// String returns a human-readable representation of the operation.
func (o Op) String() string {
	switch {
	case o.IsInsert():
		return fmt.Sprintf("Insert(%s, %q)", o.Range.Start, o.NewText())
	case o.IsDelete():
		return fmt.Sprintf("Delete%s", o.Range)
	default:
		return fmt.Sprintf("Replace%s with %q", o.Range, o.NewText())
	}
}
