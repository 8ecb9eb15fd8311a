package dispatcher

import (
	"slices"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/cursor"
	"github.com/dshills/motion/internal/engine/text"
)

// handleCursor runs req.Action on the chosen subset of selections as if it
// were the whole set, then merges the results back into the chosen slots.
// Untouched selections follow any edits the action applied.
//
// Indices address the normalized selection set: the host's selections are
// sorted by start position and deduplicated before req.Cursors is resolved, so
// index 0 is always the earliest selection in the document.
func (d *Dispatcher) handleCursor(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	set := cursor.NewSet(ctx.Host.Selections())
	sels := set.All()

	chosen, errs := set.Resolve(req.Cursors)
	for _, err := range errs {
		ctx.Log().Warn("skipping cursor: %v", err)
	}

	var subset []text.Selection
	for i, ok := range chosen {
		if ok {
			subset = append(subset, sels[i])
		}
	}
	if len(subset) == 0 {
		return handler.NoOpWithMessage(sels, "no valid cursors")
	}

	ctx.Host.SetSelections(subset)
	sub := d.dispatch(ctx.Nested(ctx.Host), *req.Action)
	if sub.IsError() {
		ctx.Host.SetSelections(transformAll(sels, sub.Edits))
		return sub
	}

	results := sub.Selections
	if !req.Action.Command.ReturnsSelections() {
		results = transformAll(subset, sub.Edits)
	}

	merged := make([]text.Selection, 0, len(sels))
	k := 0
	for i, s := range sels {
		if !chosen[i] {
			merged = append(merged, transformAll([]text.Selection{s}, sub.Edits)[0])
			continue
		}
		// Fewer results than chosen slots means the action merged cursors.
		if k < len(results) {
			merged = append(merged, results[k])
			k++
		}
	}
	merged = append(merged, results[k:]...)

	result := handler.Success(commit(ctx, merged)).WithEdits(sub.Edits...)
	if sub.Status == handler.StatusNoOp {
		result.Status = handler.StatusNoOp
	}
	return result
}

// transformAll maps sels through batches in the order they were applied.
func transformAll(sels []text.Selection, batches []edit.Batch) []text.Selection {
	out := slices.Clone(sels)
	for _, b := range batches {
		out = cursor.TransformSelections(out, b)
	}
	return out
}
