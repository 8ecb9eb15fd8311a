// Package host defines what the motion engine needs from an editor, and
// provides Memory, an in-process editor over a buffer.Buffer.
//
// A Host exposes the document read-only through text.Document, owns the
// current selection set, applies version-tagged edit batches atomically, and
// runs named commands such as the clipboard copy action. Every dispatcher
// command talks to the editor only through this interface.
package host
