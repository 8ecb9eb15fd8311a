package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrNoHandler indicates no handler is registered for a command.
	ErrNoHandler = errors.New("dispatcher: no handler for command")

	// ErrNilHost indicates a request was executed without a host.
	ErrNilHost = errors.New("dispatcher: host is nil")

	// ErrCancelled indicates the request was cancelled by a hook.
	ErrCancelled = errors.New("dispatcher: request cancelled by hook")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)
