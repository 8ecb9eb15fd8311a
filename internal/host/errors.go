package host

import "errors"

var (
	// ErrUnknownCommand is returned by RunCommand for an unregistered name.
	ErrUnknownCommand = errors.New("host: unknown command")
	// ErrNoClipboard is returned by the copy command when no clipboard is set.
	ErrNoClipboard = errors.New("host: no clipboard")
)
