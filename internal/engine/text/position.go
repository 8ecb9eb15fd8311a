package text

import "fmt"

// Position is a line/character coordinate.
type Position struct {
	Line      int // 0-indexed line number
	Character int // 0-indexed rune column
}

// Pos is shorthand for Position{Line: line, Character: character}.
func Pos(line, character int) Position {
	return Position{Line: line, Character: character}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Character)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Character < other.Character {
		return -1
	}
	if p.Character > other.Character {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsEqual returns true if both coordinates match.
func (p Position) IsEqual(other Position) bool {
	return p == other
}

// IsZero returns true if this is the document start (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Character == 0
}

// Translate returns a position shifted by the given deltas.
// Negative results are clamped to zero.
func (p Position) Translate(lineDelta, characterDelta int) Position {
	return Position{
		Line:      max(0, p.Line+lineDelta),
		Character: max(0, p.Character+characterDelta),
	}
}

// With returns a copy with the line and character replaced.
func (p Position) With(line, character int) Position {
	return Position{Line: line, Character: character}
}

// WithCharacter returns a copy on the same line at the given character.
func (p Position) WithCharacter(character int) Position {
	return Position{Line: p.Line, Character: character}
}

// AdvanceByText returns the position the caret would reach after inserting text at p.
func (p Position) AdvanceByText(s string) Position {
	lines := 0
	lastBreak := -1
	runes := 0
	for _, r := range s {
		if r == '\n' {
			lines++
			lastBreak = runes
		}
		runes++
	}
	if lines == 0 {
		return Position{Line: p.Line, Character: p.Character + runes}
	}
	return Position{Line: p.Line + lines, Character: runes - lastBreak - 1}
}

// EarlierOf returns whichever of a and b comes first in the document.
func EarlierOf(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// LaterOf returns whichever of a and b comes last in the document.
func LaterOf(a, b Position) Position {
	if EarlierOf(a, b) == a {
		return b
	}
	return a
}
