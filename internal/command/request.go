package command

import (
	"fmt"
	"strings"

	"github.com/dshills/motion/internal/motion"
)

// HostCommand is one named editor command for the commands passthrough.
type HostCommand struct {
	Name string         `json:"command" jsonschema:"required"`
	Args map[string]any `json:"args,omitempty"`
}

// Request is one dispatcher invocation.
type Request struct {
	Command  Kind             `json:"command" jsonschema:"required,enum=move,enum=select,enum=delete,enum=copy,enum=cursor,enum=increment,enum=decrement,enum=commands"`
	Movement *motion.Movement `json:"movement,omitempty"`
	// Cursors are selection indices for a cursor command. Negative indices
	// count from the end.
	Cursors []int `json:"cursors,omitempty"`
	// Action runs on the chosen cursors of a cursor command.
	Action   *Request      `json:"action,omitempty"`
	Commands []HostCommand `json:"commands,omitempty"`
}

// Move returns a move request.
func Move(m motion.Movement) Request {
	return Request{Command: KindMove, Movement: &m}
}

// Select returns a select request.
func Select(m motion.Movement) Request {
	return Request{Command: KindSelect, Movement: &m}
}

// Delete returns a delete request.
func Delete(m motion.Movement) Request {
	return Request{Command: KindDelete, Movement: &m}
}

// Copy returns a copy request.
func Copy(m motion.Movement) Request {
	return Request{Command: KindCopy, Movement: &m}
}

// Cursor returns a fan-out request running action on the given indices.
func Cursor(indices []int, action Request) Request {
	return Request{Command: KindCursor, Cursors: indices, Action: &action}
}

// Increment returns an increment request.
func Increment() Request {
	return Request{Command: KindIncrement}
}

// Decrement returns a decrement request.
func Decrement() Request {
	return Request{Command: KindDecrement}
}

// Commands returns a passthrough request.
func Commands(cmds ...HostCommand) Request {
	return Request{Command: KindCommands, Commands: cmds}
}

// Validate checks that r is well formed, including nested actions and the
// movement. It never inspects a document.
func (r Request) Validate() error {
	if !r.Command.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, r.Command)
	}

	switch {
	case r.Command.NeedsMovement():
		if r.Movement == nil {
			return fmt.Errorf("%s: %w", r.Command, ErrMissingMovement)
		}
		if err := r.Movement.Validate(); err != nil {
			return fmt.Errorf("%s: %w", r.Command, err)
		}
	case r.Command == KindCursor:
		if r.Action == nil {
			return ErrMissingAction
		}
		if err := r.Action.Validate(); err != nil {
			return fmt.Errorf("cursor action: %w", err)
		}
	case r.Command == KindCommands:
		for i, c := range r.Commands {
			if c.Name == "" {
				return fmt.Errorf("commands[%d]: %w", i, ErrEmptyCommandName)
			}
		}
	}
	return nil
}

// String returns a short description for logs.
func (r Request) String() string {
	var sb strings.Builder
	sb.WriteString(string(r.Command))
	if r.Movement != nil {
		sb.WriteString(" ")
		sb.WriteString(r.Movement.String())
	}
	if r.Command == KindCursor {
		fmt.Fprintf(&sb, " %v", r.Cursors)
		if r.Action != nil {
			sb.WriteString(" (")
			sb.WriteString(r.Action.String())
			sb.WriteString(")")
		}
	}
	for i, c := range r.Commands {
		if i == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Name)
	}
	return sb.String()
}
