package handler

import (
	"fmt"
	"slices"
	"time"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/text"
)

// ResultStatus indicates the outcome of a command.
type ResultStatus uint8

const (
	// StatusOK indicates successful execution.
	StatusOK ResultStatus = iota
	// StatusNoOp indicates the command had no effect.
	StatusNoOp
	// StatusError indicates the command failed.
	StatusError
)

// String returns a string representation of the status.
func (s ResultStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s ResultStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one command.
type Result struct {
	// Status is the outcome.
	Status ResultStatus

	// Error is set when Status is StatusError.
	Error error

	// Message is an optional human-readable note.
	Message string

	// Selections is the normalized selection set after the command. It is nil
	// for the commands passthrough and for failed commands.
	Selections []text.Selection

	// Edits are the batches applied to the document, in order.
	Edits []edit.Batch

	// Command is the command that produced the result.
	Command command.Kind

	// RequestID identifies the request.
	RequestID string

	// Duration is the time spent executing.
	Duration time.Duration
}

// IsOK returns true if the command completed, with or without effect.
func (r Result) IsOK() bool {
	return r.Status == StatusOK || r.Status == StatusNoOp
}

// IsError returns true if the command failed.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success returns a successful result carrying sels.
func Success(sels []text.Selection) Result {
	return Result{Status: StatusOK, Selections: sels}
}

// NoOp returns a result for a command that changed nothing. sels is the
// unchanged selection set.
func NoOp(sels []text.Selection) Result {
	return Result{Status: StatusNoOp, Selections: sels}
}

// NoOpWithMessage returns a no-op result with a message.
func NoOpWithMessage(sels []text.Selection, msg string) Result {
	return Result{Status: StatusNoOp, Selections: sels, Message: msg}
}

// Error returns an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf returns an error result with a formatted error.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Error: fmt.Errorf(format, args...)}
}

// WithMessage returns the result with a message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithEdits returns the result with edits appended.
func (r Result) WithEdits(batches ...edit.Batch) Result {
	r.Edits = append(slices.Clip(r.Edits), batches...)
	return r
}

// WithCommand returns the result tagged with the command kind.
func (r Result) WithCommand(k command.Kind) Result {
	r.Command = k
	return r
}

// WithRequestID returns the result tagged with a request id.
func (r Result) WithRequestID(id string) Result {
	r.RequestID = id
	return r
}

// Edited reports whether any batch was applied.
func (r Result) Edited() bool {
	for _, b := range r.Edits {
		if !b.IsEmpty() {
			return true
		}
	}
	return false
}

// String returns a short description for logs.
func (r Result) String() string {
	switch r.Status {
	case StatusError:
		return fmt.Sprintf("%s %s: %v", r.Command, r.Status, r.Error)
	default:
		return fmt.Sprintf("%s %s: %d selections, %d edits", r.Command, r.Status, len(r.Selections), len(r.Edits))
	}
}
