package edit

import (
	"fmt"
	"slices"

	"github.com/dshills/motion/internal/engine/text"
)

// Batch is an ordered list of operations tagged with the document version they
// were computed against.
type Batch struct {
	Version int64
	Ops     []Op
}

// IsEmpty returns true if the batch changes nothing.
func (b Batch) IsEmpty() bool {
	for _, op := range b.Ops {
		if !op.IsNoOp() {
			return false
		}
	}
	return true
}

// Validate checks that no two operations overlap.
// An insertion at the boundary of a deletion is allowed.
func (b Batch) Validate() error {
	ops := b.ascending()
	for i := 1; i < len(ops); i++ {
		prev, cur := ops[i-1], ops[i]
		if prev.Range.End.After(cur.Range.Start) {
			return fmt.Errorf("%w: %s and %s", ErrEditsOverlap, prev, cur)
		}
	}
	return nil
}

// ApplyOrder returns the operations in the order they must be applied so that
// earlier operations never shift the coordinates of later ones: highest start
// first, and for equal starts the wider range first. Operations recorded at the
// same range are applied last-recorded first, so their texts end up in recording
// order.
func (b Batch) ApplyOrder() []Op {
	ops := b.ascending()
	slices.Reverse(ops)
	return ops
}

func (b Batch) ascending() []Op {
	type indexed struct {
		op  Op
		idx int
	}
	items := make([]indexed, len(b.Ops))
	for i, op := range b.Ops {
		items[i] = indexed{op: op, idx: i}
	}
	slices.SortStableFunc(items, func(x, y indexed) int {
		if c := x.op.Range.Start.Compare(y.op.Range.Start); c != 0 {
			return c
		}
		if c := x.op.Range.End.Compare(y.op.Range.End); c != 0 {
			return c
		}
		return x.idx - y.idx
	})
	ops := make([]Op, len(items))
	for i, it := range items {
		ops[i] = it.op
	}
	return ops
}

// Ranges returns the ranges touched by the batch, in recording order.
func (b Batch) Ranges() []text.Range {
	ranges := make([]text.Range, len(b.Ops))
	for i, op := range b.Ops {
		ranges[i] = op.Range
	}
	return ranges
}
