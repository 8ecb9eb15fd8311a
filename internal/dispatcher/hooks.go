package dispatcher

import (
	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
)

// PreDispatchHook is called before a top-level request is dispatched.
// Returning false cancels the request.
type PreDispatchHook interface {
	// PreDispatch may modify the request. It runs after validation, so a hook
	// that changes the request is responsible for keeping it well formed.
	PreDispatch(req *command.Request, ctx *execctx.ExecutionContext) bool
}

// PostDispatchHook is called after a top-level request completes.
type PostDispatchHook interface {
	// PostDispatch may inspect or modify the result.
	PostDispatch(req *command.Request, ctx *execctx.ExecutionContext, result *handler.Result)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(req *command.Request, ctx *execctx.ExecutionContext) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(req *command.Request, ctx *execctx.ExecutionContext) bool {
	return f(req, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(req *command.Request, ctx *execctx.ExecutionContext, result *handler.Result)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(req *command.Request, ctx *execctx.ExecutionContext, result *handler.Result) {
	f(req, ctx, result)
}
