package command

import "errors"

var (
	// ErrUnknownCommand indicates a command name outside the closed set.
	ErrUnknownCommand = errors.New("command: unknown command")
	// ErrMissingMovement indicates a movement command without a movement.
	ErrMissingMovement = errors.New("command: movement is required")
	// ErrMissingAction indicates a cursor command without a nested action.
	ErrMissingAction = errors.New("command: cursor requires an action")
	// ErrEmptyCommandName indicates a host command with no name.
	ErrEmptyCommandName = errors.New("command: host command name is empty")
)
