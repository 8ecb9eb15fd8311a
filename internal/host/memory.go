package host

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/buffer"
	"github.com/dshills/motion/internal/engine/cursor"
	"github.com/dshills/motion/internal/engine/text"
)

// CommandFunc implements a named command on a Memory host.
type CommandFunc func(ctx context.Context, m *Memory, args map[string]any) error

// Memory is a Host backed by a buffer.Buffer. Applied edits move the stored
// selections the way an editor does.
type Memory struct {
	buf *buffer.Buffer

	mu        sync.RWMutex
	sels      []text.Selection
	commands  map[string]CommandFunc
	clipboard Clipboard
	history   []string
}

// Option configures a Memory host.
type Option func(*Memory)

// WithClipboard sets the clipboard used by the copy command.
func WithClipboard(c Clipboard) Option {
	return func(m *Memory) {
		m.clipboard = c
	}
}

// WithSelections sets the initial selection set.
func WithSelections(sels ...text.Selection) Option {
	return func(m *Memory) {
		m.sels = slices.Clone(sels)
	}
}

// WithCommand registers an extra command.
func WithCommand(name string, fn CommandFunc) Option {
	return func(m *Memory) {
		m.commands[name] = fn
	}
}

// NewMemory creates a host over buf with a single cursor at (0, 0) and the
// copy command registered.
func NewMemory(buf *buffer.Buffer, opts ...Option) *Memory {
	m := &Memory{
		buf:      buf,
		sels:     []text.Selection{text.NewCursor(text.Position{})},
		commands: map[string]CommandFunc{CopyCommand: copyCommand},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clipboard == nil {
		m.clipboard = DefaultClipboard()
	}
	return m
}

// NewMemoryFromString creates a host over a new buffer holding s.
func NewMemoryFromString(s string, opts ...Option) *Memory {
	return NewMemory(buffer.NewBufferFromString(s), opts...)
}

// Buffer returns the underlying buffer.
func (m *Memory) Buffer() *buffer.Buffer {
	return m.buf
}

// Clipboard returns the clipboard used by the copy command.
func (m *Memory) Clipboard() Clipboard {
	return m.clipboard
}

// LineCount implements text.Document.
func (m *Memory) LineCount() int {
	return m.buf.LineCount()
}

// LineText implements text.Document.
func (m *Memory) LineText(line int) string {
	return m.buf.LineText(line)
}

// Text returns the whole document.
func (m *Memory) Text() string {
	return m.buf.Text()
}

// TextRange returns the text covered by r.
func (m *Memory) TextRange(r text.Range) string {
	return m.buf.TextRange(r)
}

// Version implements Host.
func (m *Memory) Version() int64 {
	return m.buf.Version()
}

// Selections implements Host.
func (m *Memory) Selections() []text.Selection {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.sels)
}

// SetSelections implements Host. Selections are clamped to the document.
func (m *Memory) SetSelections(sels []text.Selection) {
	out := make([]text.Selection, len(sels))
	for i, s := range sels {
		out[i] = text.ValidateSelection(m.buf, s)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sels = out
}

// ApplyEdit implements Host.
func (m *Memory) ApplyEdit(ctx context.Context, batch edit.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.buf.ApplyBatch(batch); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sels = cursor.TransformSelections(m.sels, batch)
	return nil
}

// RunCommand implements Host.
func (m *Memory) RunCommand(ctx context.Context, name string, args map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	fn, ok := m.commands[name]
	m.history = append(m.history, name)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return fn(ctx, m, args)
}

// Register adds or replaces a command.
func (m *Memory) Register(name string, fn CommandFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[name] = fn
}

// CommandHistory returns the names passed to RunCommand, in order.
func (m *Memory) CommandHistory() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.history)
}

func copyCommand(_ context.Context, m *Memory, _ map[string]any) error {
	if m.clipboard == nil {
		return ErrNoClipboard
	}
	return m.clipboard.WriteAll(strings.Join(SelectedTexts(m), "\n"))
}
