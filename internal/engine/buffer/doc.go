// Package buffer provides a thread-safe, line-indexed text buffer.
//
// The buffer stores its content as a slice of lines without terminators and
// addresses text with text.Position (line, rune column). It is the concrete
// document behind the in-memory host:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Versioned, atomic application of edit batches
//   - Read-only snapshots that never observe later edits
//   - Line ending detection and normalization
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello world")
//
//	batch, _ := edit.Compose(buf, func(b *edit.Builder) {
//	    b.Delete(text.NewRange(text.Pos(0, 0), text.Pos(0, 6)))
//	})
//	_ = buf.ApplyBatch(batch) // "world"
//
// Thread Safety:
//
// All Buffer methods are thread-safe. A batch is applied under the write lock so
// readers observe either none or all of its operations. Use Snapshot for a
// consistent view across several reads.
package buffer
