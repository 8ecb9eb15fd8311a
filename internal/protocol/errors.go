package protocol

import "errors"

var (
	// ErrInvalidJSON indicates input that is not a JSON document.
	ErrInvalidJSON = errors.New("protocol: invalid JSON")
	// ErrInvalidField indicates a field of the wrong JSON type.
	ErrInvalidField = errors.New("protocol: invalid field")
)
