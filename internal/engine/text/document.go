package text

import "unicode/utf8"

// Document is the read side of a line-indexed text buffer.
// Implementations must return a stable view for the duration of a command.
type Document interface {
	LineCount() int
	LineText(line int) string
}

// LineLength returns the rune length of a line.
func LineLength(doc Document, line int) int {
	return utf8.RuneCountInString(doc.LineText(line))
}

// ValidatePosition clamps p to the bounds of doc.
func ValidatePosition(doc Document, p Position) Position {
	count := doc.LineCount()
	if count == 0 {
		return Position{}
	}
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= count {
		last := count - 1
		return Position{Line: last, Character: LineLength(doc, last)}
	}
	if p.Character < 0 {
		return Position{Line: p.Line}
	}
	if n := LineLength(doc, p.Line); p.Character > n {
		return Position{Line: p.Line, Character: n}
	}
	return p
}

// ValidateRange clamps both ends of r to the bounds of doc.
func ValidateRange(doc Document, r Range) Range {
	return NewRange(ValidatePosition(doc, r.Start), ValidatePosition(doc, r.End))
}

// ValidateSelection clamps both ends of s to the bounds of doc.
func ValidateSelection(doc Document, s Selection) Selection {
	return Selection{
		Anchor: ValidatePosition(doc, s.Anchor),
		Active: ValidatePosition(doc, s.Active),
	}
}

// IsValid reports whether p satisfies the position invariant for doc:
// line < lineCount and character <= length(line) + 1.
func IsValid(doc Document, p Position) bool {
	if p.Line < 0 || p.Character < 0 || p.Line >= doc.LineCount() {
		return false
	}
	return p.Character <= LineLength(doc, p.Line)+1
}

// Lines is a Document over a fixed slice of lines.
type Lines []string

// LineCount implements Document.
func (l Lines) LineCount() int {
	return len(l)
}

// LineText implements Document.
func (l Lines) LineText(line int) string {
	if line < 0 || line >= len(l) {
		return ""
	}
	return l[line]
}
