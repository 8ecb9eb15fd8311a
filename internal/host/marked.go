package host

import (
	"strings"

	"github.com/dshills/motion/internal/engine/buffer"
	"github.com/dshills/motion/internal/engine/text"
)

// CursorMark is the cursor marker in marked text.
const CursorMark = '|'

// ParseMarked strips every CursorMark from s and returns the plain text with
// one cursor per mark, in order of appearance. Text without marks gets a
// single cursor at (0, 0).
func ParseMarked(s string) (string, []text.Selection) {
	var (
		sb   strings.Builder
		sels []text.Selection
		pos  text.Position
	)
	for _, r := range s {
		switch r {
		case CursorMark:
			sels = append(sels, text.NewCursor(pos))
			continue
		case '\n':
			pos = text.Pos(pos.Line+1, 0)
		default:
			pos = pos.Translate(0, 1)
		}
		sb.WriteRune(r)
	}
	if len(sels) == 0 {
		sels = []text.Selection{text.NewCursor(text.Position{})}
	}
	return sb.String(), sels
}

// NewMemoryFromMarked creates a host from marked text, with its cursors set
// from the marks.
func NewMemoryFromMarked(s string, opts ...Option) *Memory {
	plain, sels := ParseMarked(s)
	opts = append([]Option{WithSelections(sels...)}, opts...)
	return NewMemory(buffer.NewBufferFromString(plain), opts...)
}

// Marked renders the document with a CursorMark at every selection's active
// position.
func (m *Memory) Marked() string {
	marks := make(map[text.Position]int)
	for _, s := range m.Selections() {
		marks[s.Active]++
	}

	var sb strings.Builder
	for line := range m.LineCount() {
		if line > 0 {
			sb.WriteByte('\n')
		}
		runes := []rune(m.LineText(line))
		for col := 0; col <= len(runes); col++ {
			for range marks[text.Pos(line, col)] {
				sb.WriteRune(CursorMark)
			}
			if col < len(runes) {
				sb.WriteRune(runes[col])
			}
		}
	}
	return sb.String()
}
