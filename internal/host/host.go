package host

import (
	"context"

	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/text"
)

// CopyCommand is the command name that copies the selected text to the
// clipboard.
const CopyCommand = "editor.action.clipboardCopyAction"

// Host is the editor surface the dispatcher drives.
type Host interface {
	text.Document

	// Version identifies the document state. It changes on every applied edit.
	Version() int64

	// Selections returns a copy of the current selection set.
	Selections() []text.Selection

	// SetSelections replaces the selection set.
	SetSelections(sels []text.Selection)

	// ApplyEdit applies batch atomically. It fails without changing the
	// document if batch.Version is stale or a range is out of bounds.
	ApplyEdit(ctx context.Context, batch edit.Batch) error

	// RunCommand invokes a named editor command.
	RunCommand(ctx context.Context, name string, args map[string]any) error
}

// SelectedTexts returns the text of every selection in h.
func SelectedTexts(h interface {
	Host
	TextRange(text.Range) string
}) []string {
	sels := h.Selections()
	out := make([]string, len(sels))
	for i, s := range sels {
		out[i] = h.TextRange(s.Range())
	}
	return out
}
