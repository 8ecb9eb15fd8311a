// Package text defines the coordinate value types shared by the motion engine.
//
// Position, Range and Selection are immutable values. They carry no reference to a
// buffer; the Document interface binds them to line-indexed text when a caller needs
// to validate or scan.
//
// Coordinates:
//
//   - Line is 0-indexed.
//   - Character is the 0-indexed code point (rune) column within the line.
//   - A position one past the last character of a line (Character == len(line)) is valid
//     and denotes the line end.
//
// Positions are never valid across a buffer edit. Callers recompute them from the
// post-edit document or map them through the applied batch (see package cursor).
package text
