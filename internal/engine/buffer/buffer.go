package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/text"
)

// Errors returned by buffer operations.
var (
	ErrRangeInvalid = errors.New("buffer: invalid range")
)

// LineEnding specifies the line ending style used when the buffer is serialized.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-indexed text buffer.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      []string
	version    int64
	lineEnding LineEnding
}

// NewBuffer creates a new buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      []string{""},
		version:    1,
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = splitLines(s)
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
// The line ending style is detected from the content unless set by an option.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	s := string(data)
	opts = append([]Option{WithDetectedLineEnding(s)}, opts...)
	return NewBufferFromString(s, opts...), nil
}

// splitLines normalizes line endings and splits s into lines.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// Read Operations

// Text returns the full buffer content joined with the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return strings.Join(b.lines, b.lineEnding.Sequence())
}

// LineCount returns the number of lines. A buffer always has at least one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a line without its terminator.
// Out-of-range lines return "".
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// LineLen returns the length of a line in runes.
func (b *Buffer) LineLen(line int) int {
	return utf8.RuneCountInString(b.LineText(line))
}

// TextRange returns the text covered by r, with lines joined by "\n".
func (b *Buffer) TextRange(r text.Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return textRange(b.lines, r)
}

// Version returns the current document version.
// The version increases by one for every applied batch.
func (b *Buffer) Version() int64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines) == 1 && b.lines[0] == ""
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// Write Operations

// ApplyBatch applies every operation of batch as one atomic mutation.
// It fails without changing the buffer if the batch was computed against another
// version, if operations overlap, or if any range lies outside the buffer.
func (b *Buffer) ApplyBatch(batch edit.Batch) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if batch.Version != b.version {
		return fmt.Errorf("%w: batch %d, buffer %d", edit.ErrVersionMismatch, batch.Version, b.version)
	}
	if err := batch.Validate(); err != nil {
		return err
	}

	doc := text.Lines(b.lines)
	for _, op := range batch.Ops {
		if !inBounds(doc, op.Range.Start) || !inBounds(doc, op.Range.End) {
			return fmt.Errorf("%w: %s", ErrRangeInvalid, op.Range)
		}
	}

	if batch.IsEmpty() {
		return nil
	}

	// Readers and snapshots may hold the old slice.
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	for _, op := range batch.ApplyOrder() {
		lines = replaceRange(lines, op.Range, op.NewText())
	}

	b.lines = lines
	b.version++
	return nil
}

// Snapshot returns a read-only view of the current buffer state.
// Safe for concurrent access from other goroutines.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return &Snapshot{
		lines:      b.lines, // never mutated in place
		version:    b.version,
		lineEnding: b.lineEnding,
	}
}

func inBounds(doc text.Document, p text.Position) bool {
	if p.Line < 0 || p.Line >= doc.LineCount() || p.Character < 0 {
		return false
	}
	return p.Character <= text.LineLength(doc, p.Line)
}

// replaceRange returns lines with r replaced by s. The slice is modified in place
// when the line count does not change.
func replaceRange(lines []string, r text.Range, s string) []string {
	head := runePrefix(lines[r.Start.Line], r.Start.Character)
	tail := runeSuffix(lines[r.End.Line], r.End.Character)

	inserted := strings.Split(strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n"), "\n")
	inserted[0] = head + inserted[0]
	inserted[len(inserted)-1] += tail

	removed := r.End.Line - r.Start.Line + 1
	if removed == len(inserted) {
		copy(lines[r.Start.Line:], inserted)
		return lines
	}

	out := make([]string, 0, len(lines)-removed+len(inserted))
	out = append(out, lines[:r.Start.Line]...)
	out = append(out, inserted...)
	out = append(out, lines[r.End.Line+1:]...)
	return out
}

func textRange(lines []string, r text.Range) string {
	doc := text.Lines(lines)
	r = text.ValidateRange(doc, r)
	if r.IsSingleLine() {
		line := lines[r.Start.Line]
		return runeSuffix(runePrefix(line, r.End.Character), r.Start.Character)
	}

	var sb strings.Builder
	sb.WriteString(runeSuffix(lines[r.Start.Line], r.Start.Character))
	for l := r.Start.Line + 1; l < r.End.Line; l++ {
		sb.WriteByte('\n')
		sb.WriteString(lines[l])
	}
	sb.WriteByte('\n')
	sb.WriteString(runePrefix(lines[r.End.Line], r.End.Character))
	return sb.String()
}

// runePrefix returns the first n runes of s.
func runePrefix(s string, n int) string {
	return s[:byteOffset(s, n)]
}

// runeSuffix returns s without its first n runes.
func runeSuffix(s string, n int) string {
	return s[byteOffset(s, n):]
}

// byteOffset converts a rune column to a byte offset, clamped to len(s).
func byteOffset(s string, col int) int {
	if col <= 0 {
		return 0
	}
	i := 0
	for off := range s {
		if i == col {
			return off
		}
		i++
	}
	return len(s)
}
