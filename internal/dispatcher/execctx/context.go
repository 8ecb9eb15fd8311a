// Package execctx provides the per-request execution context passed to
// command handlers.
//
// There is no process-wide active editor: everything a handler touches (the
// host, the motion resolver, the logger) arrives through an ExecutionContext
// built for that request.
package execctx

import (
	"context"

	"github.com/dshills/motion/internal/engine/nav"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/logging"
	"github.com/dshills/motion/internal/motion"
)

// ExecutionContext carries what a handler needs to execute one request.
type ExecutionContext struct {
	// Context bounds the host calls made by the handler.
	Context context.Context

	// Host is the editor the request operates on.
	Host host.Host

	// Resolver resolves movements against Host.
	Resolver *motion.Resolver

	// Logger is scoped to the request.
	Logger *logging.Logger

	// RequestID identifies the top-level request. Nested fan-out actions share it.
	RequestID string

	// ClipboardCommand is the host command run by copy.
	ClipboardCommand string

	// Depth is the fan-out nesting level, zero for the top-level request.
	Depth int
}

// New creates an execution context over h with a default resolver and a
// discarding logger.
func New(ctx context.Context, h host.Host) *ExecutionContext {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ExecutionContext{
		Context:          ctx,
		Host:             h,
		Resolver:         motion.NewResolver(),
		Logger:           logging.Nop(),
		ClipboardCommand: host.CopyCommand,
	}
}

// WithResolver returns the context with the resolver set.
func (ctx *ExecutionContext) WithResolver(r *motion.Resolver) *ExecutionContext {
	ctx.Resolver = r
	return ctx
}

// WithLogger returns the context with the logger set.
func (ctx *ExecutionContext) WithLogger(l *logging.Logger) *ExecutionContext {
	ctx.Logger = l
	return ctx
}

// WithRequestID returns the context with the request id set.
func (ctx *ExecutionContext) WithRequestID(id string) *ExecutionContext {
	ctx.RequestID = id
	return ctx
}

// WithClipboardCommand returns the context with the copy command name set.
func (ctx *ExecutionContext) WithClipboardCommand(name string) *ExecutionContext {
	if name != "" {
		ctx.ClipboardCommand = name
	}
	return ctx
}

// Nested returns a copy of ctx for a fan-out action running on h.
func (ctx *ExecutionContext) Nested(h host.Host) *ExecutionContext {
	sub := *ctx
	sub.Host = h
	sub.Depth++
	return &sub
}

// Validate reports a missing host or resolver.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Host == nil {
		return ErrMissingHost
	}
	if ctx.Resolver == nil {
		return ErrMissingResolver
	}
	return nil
}

// Navigator returns a navigator over the host document using the resolver's
// word classes.
func (ctx *ExecutionContext) Navigator() *nav.Navigator {
	return ctx.Resolver.Navigator(ctx.Host)
}

// Log returns the logger, never nil.
func (ctx *ExecutionContext) Log() *logging.Logger {
	if ctx.Logger == nil {
		return logging.Nop()
	}
	return ctx.Logger
}

// Err returns the context's cancellation error, if any.
func (ctx *ExecutionContext) Err() error {
	if ctx.Context == nil {
		return nil
	}
	return ctx.Context.Err()
}
