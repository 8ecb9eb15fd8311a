package dispatcher

import (
	"fmt"

	"github.com/dshills/motion/internal/action"
	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/edit"
)

func handleIncrement(ctx *execctx.ExecutionContext, _ command.Request) handler.Result {
	return runNumberAction(ctx, action.Increment)
}

func handleDecrement(ctx *execctx.ExecutionContext, _ command.Request) handler.Result {
	return runNumberAction(ctx, action.Decrement)
}

// runNumberAction plans every replacement against one snapshot of the document
// and applies them as a single batch.
func runNumberAction(ctx *execctx.ExecutionContext, a action.NumberAction) handler.Result {
	sels := ctx.Host.Selections()
	plan := a.Plan(ctx.Navigator(), sels)

	batch, err := edit.Compose(ctx.Host, plan.Record)
	if err != nil {
		return handler.Error(err)
	}

	result := handler.Result{Status: handler.StatusNoOp}
	if !batch.IsEmpty() {
		if err := ctx.Host.ApplyEdit(ctx.Context, batch); err != nil {
			return handler.Error(fmt.Errorf("number: %w", err))
		}
		result = handler.Success(nil).WithEdits(batch)
	}
	result.Selections = commit(ctx, plan.Cursors(sels, batch))
	return result
}

// handleCommands runs each host command in order and stops at the first
// failure.
func handleCommands(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	for _, c := range req.Commands {
		if err := ctx.Host.RunCommand(ctx.Context, c.Name, c.Args); err != nil {
			return handler.Error(fmt.Errorf("commands: %s: %w", c.Name, err))
		}
	}
	if len(req.Commands) == 0 {
		return handler.NoOp(nil)
	}
	return handler.Success(nil)
}
