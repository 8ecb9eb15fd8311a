package script

import (
	"errors"
	"fmt"

	"github.com/dshills/motion/internal/command"
)

var (
	// ErrNoSteps indicates a YAML script without steps.
	ErrNoSteps = errors.New("script: no steps")
	// ErrStateClosed indicates use of a closed Lua engine.
	ErrStateClosed = errors.New("script: lua state closed")
)

// StepError reports the step of a script that failed.
type StepError struct {
	Index   int
	Request command.Request
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Request, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
