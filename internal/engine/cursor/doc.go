// Package cursor manages selection sets and maps them through buffer edits.
//
// The cursor package handles:
//
//   - Canonical ordering of multi-cursor selection sets (Normalize)
//   - Index-based access to a selection set, with negative indices counting
//     from the end (Set.Resolve)
//   - Transformation of positions and selections through an applied edit batch
//
// Normalization sorts selections by (start, end), then by (anchor, active), and
// drops selections whose anchor and active both equal an earlier one. Selections
// that merely overlap are kept; only exact duplicates collapse.
//
// Basic usage:
//
//	sels := cursor.Normalize(host.Selections())
//
//	// After applying a batch, carry untouched selections across it
//	moved := cursor.TransformSelections(sels, batch)
//
// Thread Safety:
//
// All functions are pure. Set is not thread-safe and should be protected by
// external synchronization if shared.
package cursor
