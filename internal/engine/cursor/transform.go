package cursor

import (
	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/text"
)

// Bias decides where a position exactly at an insertion point ends up.
type Bias uint8

const (
	// BiasOp follows the operation's ForceMoveMarkers flag.
	BiasOp Bias = iota
	// BiasLeft keeps the position before inserted text.
	BiasLeft
	// BiasRight moves the position after inserted text.
	BiasRight
)

// TransformPositionOp maps p through a single operation.
//
// Transformation rules:
//   - Operation entirely after p: p unchanged
//   - Operation ends at or before p: p shifts by the operation's delta
//   - p strictly inside the replaced range: p moves to the start of the operation
//   - Insertion exactly at p: decided by bias
func TransformPositionOp(p text.Position, op edit.Op, bias Bias) text.Position {
	r := op.Range

	if p.Before(r.Start) {
		return p
	}

	if r.IsEmpty() && p == r.Start {
		moves := bias == BiasRight || (bias == BiasOp && op.ForceMoveMarkers)
		if !moves {
			return p
		}
		return op.End()
	}

	if p.Before(r.End) {
		return r.Start
	}

	end := op.End()
	if p.Line == r.End.Line {
		return text.Position{
			Line:      end.Line,
			Character: end.Character + p.Character - r.End.Character,
		}
	}
	return text.Position{
		Line:      p.Line + end.Line - r.End.Line,
		Character: p.Character,
	}
}

// TransformPosition maps p through every operation of batch.
func TransformPosition(p text.Position, batch edit.Batch) text.Position {
	return TransformPositionBias(p, batch, BiasOp)
}

// TransformPositionBias maps p through every operation of batch using bias for
// insertions at p.
func TransformPositionBias(p text.Position, batch edit.Batch, bias Bias) text.Position {
	// Operations are applied highest first; each one leaves lower coordinates intact.
	for _, op := range batch.ApplyOrder() {
		p = TransformPositionOp(p, op, bias)
	}
	return p
}

// TransformSelection maps both ends of sel through batch.
func TransformSelection(sel text.Selection, batch edit.Batch) text.Selection {
	return text.Selection{
		Anchor: TransformPosition(sel.Anchor, batch),
		Active: TransformPosition(sel.Active, batch),
	}
}

// TransformSelections maps every selection through batch.
// The result is not normalized.
func TransformSelections(sels []text.Selection, batch edit.Batch) []text.Selection {
	out := make([]text.Selection, len(sels))
	for i, sel := range sels {
		out[i] = TransformSelection(sel, batch)
	}
	return out
}
