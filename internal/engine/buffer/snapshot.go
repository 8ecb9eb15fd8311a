package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/motion/internal/engine/text"
)

// Snapshot provides a read-only view of a buffer at a specific version.
// It is safe for concurrent access and will not change even if the original
// buffer is modified.
type Snapshot struct {
	lines      []string
	version    int64
	lineEnding LineEnding
}

// Text returns the full snapshot content joined with the buffer's line ending.
func (s *Snapshot) Text() string {
	return strings.Join(s.lines, s.lineEnding.Sequence())
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// LineText returns the text of a line without its terminator.
func (s *Snapshot) LineText(line int) string {
	if line < 0 || line >= len(s.lines) {
		return ""
	}
	return s.lines[line]
}

// LineLen returns the length of a line in runes.
func (s *Snapshot) LineLen(line int) int {
	return utf8.RuneCountInString(s.LineText(line))
}

// TextRange returns the text covered by r, with lines joined by "\n".
func (s *Snapshot) TextRange(r text.Range) string {
	return textRange(s.lines, r)
}

// Version returns the buffer version the snapshot was taken at.
func (s *Snapshot) Version() int64 {
	return s.version
}

// LineEnding returns the line ending style at the time of the snapshot.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}
