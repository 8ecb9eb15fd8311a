package motion

import "errors"

// Errors returned by movement validation.
var (
	// ErrUnknownMovement indicates an unrecognized movement type or modifier.
	ErrUnknownMovement = errors.New("motion: unknown movement")

	// ErrUnknownDirection indicates an unrecognized direction.
	ErrUnknownDirection = errors.New("motion: unknown direction")
)
