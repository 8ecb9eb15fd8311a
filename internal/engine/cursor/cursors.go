package cursor

import (
	"fmt"
	"slices"

	"github.com/dshills/motion/internal/engine/text"
)

// Compare orders selections by (start, end) and then by (anchor, active).
func Compare(a, b text.Selection) int {
	if c := a.Start().Compare(b.Start()); c != 0 {
		return c
	}
	if c := a.End().Compare(b.End()); c != 0 {
		return c
	}
	if c := a.Anchor.Compare(b.Anchor); c != 0 {
		return c
	}
	return a.Active.Compare(b.Active)
}

// Normalize returns a sorted copy of sels with exact duplicates removed.
func Normalize(sels []text.Selection) []text.Selection {
	out := slices.Clone(sels)
	slices.SortStableFunc(out, Compare)
	return slices.CompactFunc(out, text.Selection.Equals)
}

// IsNormalized reports whether sels is sorted and free of exact duplicates.
func IsNormalized(sels []text.Selection) bool {
	for i := 1; i < len(sels); i++ {
		if Compare(sels[i-1], sels[i]) >= 0 {
			return false
		}
	}
	return true
}

// Set is an ordered multi-cursor selection set.
type Set struct {
	selections []text.Selection
}

// NewSet creates a set from sels. The slice is copied and normalized.
func NewSet(sels []text.Selection) *Set {
	return &Set{selections: Normalize(sels)}
}

// All returns a copy of all selections.
func (s *Set) All() []text.Selection {
	return slices.Clone(s.selections)
}

// Count returns the number of selections.
func (s *Set) Count() int {
	return len(s.selections)
}

// Primary returns the first selection, or the zero selection for an empty set.
func (s *Set) Primary() text.Selection {
	if len(s.selections) == 0 {
		return text.Selection{}
	}
	return s.selections[0]
}

// Get returns the selection at index.
// Returns an empty selection if index is out of range.
func (s *Set) Get(index int) text.Selection {
	if index < 0 || index >= len(s.selections) {
		return text.Selection{}
	}
	return s.selections[index]
}

// IndexError reports an index outside the selection set.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cursor index %d out of range for %d selections", e.Index, e.Count)
}

// Resolve maps requested indices to slots in the set. Negative indices count from
// the end. It returns a mask of chosen slots and one error per invalid index;
// invalid indices are skipped.
func (s *Set) Resolve(indices []int) ([]bool, []error) {
	n := len(s.selections)
	chosen := make([]bool, n)
	var errs []error
	for _, req := range indices {
		idx := req
		if idx < 0 {
			idx += n
		}
		if idx < 0 || idx >= n {
			errs = append(errs, &IndexError{Index: req, Count: n})
			continue
		}
		chosen[idx] = true
	}
	return chosen, errs
}
