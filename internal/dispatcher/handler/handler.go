// Package handler provides the handler interface and result type for command
// dispatch.
package handler

import (
	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
)

// Handler executes one command kind.
type Handler interface {
	// Handle executes req and returns a result.
	Handle(ctx *execctx.ExecutionContext, req command.Request) Result
}

// Func adapts a function to Handler.
type Func func(ctx *execctx.ExecutionContext, req command.Request) Result

// Handle implements Handler.
func (f Func) Handle(ctx *execctx.ExecutionContext, req command.Request) Result {
	if f == nil {
		return Errorf("handler function is nil")
	}
	return f(ctx, req)
}
