package edit

import "github.com/dshills/motion/internal/engine/text"

// Versioned is a document snapshot that carries a version number.
type Versioned interface {
	text.Document
	Version() int64
}

// Builder records operations against a document snapshot.
// Every range is clamped to the snapshot bounds as it is recorded.
type Builder struct {
	doc text.Document
	ops []Op
}

// Replace records replacing the text in r.
func (b *Builder) Replace(r text.Range, s string) {
	b.record(r, &s, false)
}

// ReplaceAt records inserting s at p without moving carets sitting at p.
func (b *Builder) ReplaceAt(p text.Position, s string) {
	b.record(text.EmptyRange(p), &s, false)
}

// Insert records inserting s at p. Carets at p move past the new text.
func (b *Builder) Insert(p text.Position, s string) {
	b.record(text.EmptyRange(p), &s, true)
}

// Delete records removing the text in r.
func (b *Builder) Delete(r text.Range) {
	b.record(r, nil, false)
}

// Len returns the number of recorded operations.
func (b *Builder) Len() int {
	return len(b.ops)
}

func (b *Builder) record(r text.Range, s *string, force bool) {
	b.ops = append(b.ops, Op{
		Range:            text.ValidateRange(b.doc, r),
		Text:             s,
		ForceMoveMarkers: force,
	})
}

// Compose runs fn against a builder bound to doc and returns the recorded
// operations as a batch tagged with doc's version.
func Compose(doc Versioned, fn func(*Builder)) (Batch, error) {
	if doc == nil {
		return Batch{}, ErrNilDocument
	}
	b := &Builder{doc: doc}
	fn(b)
	batch := Batch{Version: doc.Version(), Ops: b.ops}
	if err := batch.Validate(); err != nil {
		return Batch{}, err
	}
	return batch, nil
}
