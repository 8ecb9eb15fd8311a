// Package nav implements position navigation over a line-indexed document.
//
// A Navigator binds a text.Document to two word classes and answers boundary
// queries: word and big-word starts and ends, sentence, paragraph and section
// boundaries, character find/til within a line, and horizontal and vertical
// steps. Every query is pure; it reads the document and returns a fresh
// text.Position.
//
// Word classes are regex driven. A class is built from a set of separator
// characters and matches, in order of preference:
//
//   - a maximal run of characters that are neither whitespace nor separators
//   - a maximal run of separators (omitted when the set is empty)
//   - the empty line
//
// The default word class separates on common punctuation. The big-word class
// has no separators and splits on whitespace only.
//
// Queries that cannot advance (document edges, character not on the line)
// return their input position or report ok=false. They never fail.
package nav
