// Package edit composes text mutations into version-tagged batches.
//
// A Batch is computed against one snapshot of a document and applied as a single
// atomic mutation by the host. Every position captured before the batch is applied
// is stale afterwards; callers map positions through the batch with package cursor
// or recompute them from the post-edit document.
//
// Basic usage:
//
//	batch, err := edit.Compose(doc, func(b *edit.Builder) {
//	    b.Delete(text.NewRange(text.Pos(0, 0), text.Pos(0, 6)))
//	    b.Insert(text.Pos(1, 0), "// ")
//	})
//	if err != nil {
//	    return err
//	}
//	err = buf.ApplyBatch(batch)
package edit
