package dispatcher

import (
	"fmt"
	"slices"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/execctx"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/cursor"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/motion"
)

// commit normalizes sels, hands them to the host and returns them.
func commit(ctx *execctx.ExecutionContext, sels []text.Selection) []text.Selection {
	sels = cursor.Normalize(sels)
	ctx.Host.SetSelections(sels)
	return sels
}

// movementRanges resolves m from the active end of every selection.
func movementRanges(ctx *execctx.ExecutionContext, sels []text.Selection, m motion.Movement) ([]text.Range, error) {
	out := make([]text.Range, len(sels))
	for i, s := range sels {
		r, err := ctx.Resolver.Range(ctx.Host, s.Active, m)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// Widen extends sel to cover r. It never shrinks sel and keeps its direction:
// a reversed selection stays reversed.
func Widen(sel text.Selection, r text.Range) text.Selection {
	start := text.EarlierOf(sel.Start(), r.Start)
	end := text.LaterOf(sel.End(), r.End)
	if sel.IsReversed() {
		return text.NewSelection(end, start)
	}
	return text.NewSelection(start, end)
}

func handleMove(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	sels := ctx.Host.Selections()
	out := make([]text.Selection, len(sels))
	for i, s := range sels {
		p, err := ctx.Resolver.Position(ctx.Host, s.Active, *req.Movement)
		if err != nil {
			return handler.Error(err)
		}
		out[i] = text.NewCursor(p)
	}
	return handler.Success(commit(ctx, out))
}

// widened computes the select result without touching the host.
func widened(ctx *execctx.ExecutionContext, sels []text.Selection, m motion.Movement) ([]text.Selection, error) {
	ranges, err := movementRanges(ctx, sels, m)
	if err != nil {
		return nil, err
	}
	out := make([]text.Selection, len(sels))
	for i, s := range sels {
		out[i] = Widen(s, ranges[i])
	}
	return out, nil
}

func handleSelect(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	out, err := widened(ctx, ctx.Host.Selections(), *req.Movement)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Success(commit(ctx, out))
}

func handleCopy(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	original := cursor.Normalize(ctx.Host.Selections())

	out, err := widened(ctx, original, *req.Movement)
	if err != nil {
		return handler.Error(err)
	}
	ctx.Host.SetSelections(cursor.Normalize(out))

	err = ctx.Host.RunCommand(ctx.Context, ctx.ClipboardCommand, nil)
	ctx.Host.SetSelections(original)
	if err != nil {
		return handler.Error(fmt.Errorf("copy: %w", err))
	}
	return handler.Success(original)
}

func handleDelete(ctx *execctx.ExecutionContext, req command.Request) handler.Result {
	sels := ctx.Host.Selections()
	ranges, err := movementRanges(ctx, sels, *req.Movement)
	if err != nil {
		return handler.Error(err)
	}

	batch, err := edit.Compose(ctx.Host, func(b *edit.Builder) {
		for _, r := range MergeRanges(ranges) {
			if !r.IsEmpty() {
				b.Delete(r)
			}
		}
	})
	if err != nil {
		return handler.Error(err)
	}

	result := handler.Result{}
	if !batch.IsEmpty() {
		if err := ctx.Host.ApplyEdit(ctx.Context, batch); err != nil {
			return handler.Error(fmt.Errorf("delete: %w", err))
		}
		result = result.WithEdits(batch)
	}

	out := make([]text.Selection, len(sels))
	for i, s := range sels {
		if ranges[i].Contains(s.Active) {
			out[i] = text.NewCursor(cursor.TransformPosition(ranges[i].Start, batch))
			continue
		}
		out[i] = cursor.TransformSelection(s, batch)
	}

	result.Selections = commit(ctx, out)
	if batch.IsEmpty() {
		result.Status = handler.StatusNoOp
	}
	return result
}

// MergeRanges returns the union of overlapping or touching ranges, sorted.
func MergeRanges(ranges []text.Range) []text.Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b text.Range) int {
		if c := a.Start.Compare(b.Start); c != 0 {
			return c
		}
		return a.End.Compare(b.End)
	})

	var out []text.Range
	for _, r := range sorted {
		if n := len(out); n > 0 && !out[n-1].End.Before(r.Start) {
			out[n-1] = out[n-1].Union(r)
			continue
		}
		out = append(out, r)
	}
	return out
}
