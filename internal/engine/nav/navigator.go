package nav

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/motion/internal/engine/text"
)

// Navigator answers boundary queries over a document.
type Navigator struct {
	doc     text.Document
	word    *WordClass
	bigWord *WordClass
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithWordClass replaces the word class.
func WithWordClass(c *WordClass) Option {
	return func(n *Navigator) {
		if c != nil {
			n.word = c
		}
	}
}

// WithBigWordClass replaces the big-word class.
func WithBigWordClass(c *WordClass) Option {
	return func(n *Navigator) {
		if c != nil {
			n.bigWord = c
		}
	}
}

// New creates a navigator over doc.
func New(doc text.Document, opts ...Option) *Navigator {
	n := &Navigator{
		doc:     doc,
		word:    DefaultWordClass,
		bigWord: BigWordClass,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Document returns the navigated document.
func (n *Navigator) Document() text.Document {
	return n.doc
}

func (n *Navigator) line(l int) string {
	return n.doc.LineText(l)
}

func (n *Navigator) lineLen(l int) int {
	return utf8.RuneCountInString(n.doc.LineText(l))
}

func (n *Navigator) lastLine() int {
	return max(0, n.doc.LineCount()-1)
}

// Line positions

// LineBegin returns column 0 of p's line.
func (n *Navigator) LineBegin(p text.Position) text.Position {
	return text.Pos(p.Line, 0)
}

// LineEnd returns the position after the last character of p's line.
func (n *Navigator) LineEnd(p text.Position) text.Position {
	return text.Pos(p.Line, n.lineLen(p.Line))
}

// IsLineBeginning reports whether p is at column 0.
func (n *Navigator) IsLineBeginning(p text.Position) bool {
	return p.Character == 0
}

// IsLineEnd reports whether p is at or past the end of its line.
func (n *Navigator) IsLineEnd(p text.Position) bool {
	return p.Character >= n.lineLen(p.Line)
}

// NextLineBegin returns column 0 of the following line, or the line end on the
// last line.
func (n *Navigator) NextLineBegin(p text.Position) text.Position {
	if p.Line >= n.lastLine() {
		return n.LineEnd(p)
	}
	return text.Pos(p.Line+1, 0)
}

// PreviousLineBegin returns column 0 of the preceding line, or of p's line on
// the first line.
func (n *Navigator) PreviousLineBegin(p text.Position) text.Position {
	if p.Line == 0 {
		return n.LineBegin(p)
	}
	return text.Pos(p.Line-1, 0)
}

// FirstLineNonBlank returns the first non-whitespace column of p's line, or the
// line end for a blank line.
func (n *Navigator) FirstLineNonBlank(p text.Position) text.Position {
	col := 0
	for _, r := range n.line(p.Line) {
		if !unicode.IsSpace(r) {
			break
		}
		col++
	}
	return text.Pos(p.Line, col)
}

// Document positions

// DocumentBegin returns (0, 0).
func (n *Navigator) DocumentBegin() text.Position {
	return text.Position{}
}

// DocumentEnd returns the end of the last line.
func (n *Navigator) DocumentEnd() text.Position {
	last := n.lastLine()
	return text.Pos(last, n.lineLen(last))
}

// IsAtDocumentEnd reports whether p is at the end of the last line.
func (n *Navigator) IsAtDocumentEnd(p text.Position) bool {
	return p.Line == n.lastLine() && n.IsLineEnd(p)
}

// Horizontal motion

// Left steps one character left, stopping at column 0.
func (n *Navigator) Left(p text.Position) text.Position {
	if p.Character > 0 {
		return text.Pos(p.Line, p.Character-1)
	}
	return p
}

// Right steps one character right, stopping at the line end.
func (n *Navigator) Right(p text.Position) text.Position {
	if !n.IsLineEnd(p) {
		return text.Pos(p.Line, p.Character+1)
	}
	return p
}

// LeftThroughLineBreaks steps left, wrapping to the end of the previous line.
// It is a no-op at the document start.
func (n *Navigator) LeftThroughLineBreaks(p text.Position) text.Position {
	if !n.IsLineBeginning(p) {
		return n.Left(p)
	}
	if p.Line == 0 {
		return p
	}
	return n.LineEnd(text.Pos(p.Line-1, 0))
}

// RightThroughLineBreaks steps right, wrapping from the last character of a line
// to the start of the next one. It is a no-op at the document end.
func (n *Navigator) RightThroughLineBreaks(p text.Position) text.Position {
	if n.IsAtDocumentEnd(p) {
		return p
	}
	right := n.Right(p)
	if n.IsLineEnd(right) && p.Line < n.lastLine() {
		return n.Down(p, 0)
	}
	return right
}

// Vertical motion

// Down moves to the next line at column min(col, length). No-op on the last line.
func (n *Navigator) Down(p text.Position, col int) text.Position {
	if p.Line >= n.lastLine() {
		return p
	}
	next := p.Line + 1
	return text.Pos(next, min(n.lineLen(next), col))
}

// Up moves to the previous line at column min(col, length). No-op on the first line.
func (n *Navigator) Up(p text.Position, col int) text.Position {
	if p.Line <= 0 {
		return p
	}
	prev := p.Line - 1
	return text.Pos(prev, min(n.lineLen(prev), col))
}

// DownByCount moves count lines down, clamped to the last line. The column is
// preserved and clamped to the target line length.
func (n *Navigator) DownByCount(p text.Position, count int) text.Position {
	return text.ValidatePosition(n.doc, text.Pos(min(n.lastLine(), p.Line+count), p.Character))
}

// UpByCount moves count lines up, clamped to the first line. The column is
// preserved and clamped to the target line length.
func (n *Navigator) UpByCount(p text.Position, count int) text.Position {
	return text.ValidatePosition(n.doc, text.Pos(max(0, p.Line-count), p.Character))
}
