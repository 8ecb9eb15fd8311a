package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingHost indicates the host is required but not set.
	ErrMissingHost = errors.New("execution context: host is required")

	// ErrMissingResolver indicates the motion resolver is required but not set.
	ErrMissingResolver = errors.New("execution context: resolver is required")
)
