package edit

import "errors"

// Errors returned by batch composition and validation.
var (
	// ErrEditsOverlap indicates two operations in a batch touch the same text.
	ErrEditsOverlap = errors.New("edit: operations overlap")

	// ErrVersionMismatch indicates a batch was computed against a different document version.
	ErrVersionMismatch = errors.New("edit: document version mismatch")

	// ErrNilDocument indicates Compose was called without a document.
	ErrNilDocument = errors.New("edit: nil document")
)
