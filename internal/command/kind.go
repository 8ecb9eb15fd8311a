package command

import "fmt"

// Kind is a top-level command name.
type Kind string

// Commands.
const (
	KindMove      Kind = "move"
	KindSelect    Kind = "select"
	KindDelete    Kind = "delete"
	KindCopy      Kind = "copy"
	KindCursor    Kind = "cursor"
	KindIncrement Kind = "increment"
	KindDecrement Kind = "decrement"
	KindCommands  Kind = "commands"
)

// Kinds lists every command.
var Kinds = []Kind{
	KindMove, KindSelect, KindDelete, KindCopy, KindCursor,
	KindIncrement, KindDecrement, KindCommands,
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
	return k, nil
}

// IsValid reports whether k is one of Kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindMove, KindSelect, KindDelete, KindCopy, KindCursor,
		KindIncrement, KindDecrement, KindCommands:
		return true
	}
	return false
}

// NeedsMovement reports whether k resolves a movement.
func (k Kind) NeedsMovement() bool {
	switch k {
	case KindMove, KindSelect, KindDelete, KindCopy:
		return true
	}
	return false
}

// ReturnsSelections reports whether k produces a selection set. The commands
// passthrough does not.
func (k Kind) ReturnsSelections() bool {
	return k != KindCommands
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
