package action

import (
	"unicode/utf8"

	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/cursor"
	"github.com/dshills/motion/internal/engine/nav"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/numeric"
)

// NumberAction adds Delta to the number under or after a cursor.
type NumberAction struct {
	Delta int64
}

var (
	// Increment adds one.
	Increment = NumberAction{Delta: 1}
	// Decrement subtracts one.
	Decrement = NumberAction{Delta: -1}
)

// Replacement rewrites one number literal.
type Replacement struct {
	Range text.Range // the literal, sign included
	Old   string
	New   string
}

// SameWidth reports whether the new literal has the old one's width.
func (r Replacement) SameWidth() bool {
	return utf8.RuneCountInString(r.Old) == utf8.RuneCountInString(r.New)
}

// Record adds the edits for r to b. A literal that changes width is deleted and
// re-inserted instead of replaced in place.
func (r Replacement) Record(b *edit.Builder) {
	if r.SameWidth() {
		b.Replace(r.Range, r.New)
		return
	}
	b.Delete(r.Range)
	b.Insert(r.Range.Start, r.New)
}

// Find locates the first number at or after pos on pos's line.
func (a NumberAction) Find(n *nav.Navigator, pos text.Position) (Replacement, bool) {
	line := []rune(n.Document().LineText(pos.Line))

	for w := range n.Words(pos) {
		start, word := w.Start, w.Word
		// '-' is a separator, so the sign arrives as part of the previous word.
		if start.Character > 0 && line[start.Character-1] == '-' {
			start = start.Translate(0, -1)
			word = "-" + word
		}

		num, ok := numeric.Parse(word)
		if !ok {
			continue
		}
		next, ok := num.Add(a.Delta)
		if !ok {
			continue
		}
		return Replacement{
			Range: text.NewRange(start, w.End.Translate(0, 1)),
			Old:   word,
			New:   next.String(),
		}, true
	}
	return Replacement{}, false
}

// Plan is the set of number rewrites for a selection set, computed against one
// snapshot.
type Plan struct {
	Replacements []Replacement
	targets      []int // per selection: index into Replacements, or -1
}

// Plan finds the number for every selection's active position. Selections that
// land on the same literal share one replacement.
func (a NumberAction) Plan(n *nav.Navigator, sels []text.Selection) Plan {
	p := Plan{targets: make([]int, len(sels))}
	seen := make(map[text.Range]int)

	for i, sel := range sels {
		p.targets[i] = -1
		r, ok := a.Find(n, sel.Active)
		if !ok {
			continue
		}
		if idx, dup := seen[r.Range]; dup {
			p.targets[i] = idx
			continue
		}
		seen[r.Range] = len(p.Replacements)
		p.targets[i] = len(p.Replacements)
		p.Replacements = append(p.Replacements, r)
	}
	return p
}

// IsEmpty reports whether no selection found a number.
func (p Plan) IsEmpty() bool {
	return len(p.Replacements) == 0
}

// Record adds every replacement to b.
func (p Plan) Record(b *edit.Builder) {
	for _, r := range p.Replacements {
		r.Record(b)
	}
}

// Cursors returns the post-edit cursors: at the start of the rewritten number,
// or at the original active position (mapped through batch) when none was found.
func (p Plan) Cursors(sels []text.Selection, batch edit.Batch) []text.Selection {
	out := make([]text.Selection, len(sels))
	for i, sel := range sels {
		if idx := p.targets[i]; idx >= 0 {
			start := cursor.TransformPositionBias(p.Replacements[idx].Range.Start, batch, cursor.BiasLeft)
			out[i] = text.NewCursor(start)
			continue
		}
		out[i] = text.NewCursor(cursor.TransformPosition(sel.Active, batch))
	}
	return out
}
