package nav

import (
	"slices"

	"github.com/dshills/motion/internal/engine/text"
)

// SentenceBegin returns the start of the next (forward) or previous sentence.
// Sentence ends are '.', '!' or '?' followed by whitespace or the line end;
// the scan stays within p's paragraph.
func (n *Navigator) SentenceBegin(p text.Position, forward bool) text.Position {
	if forward {
		return n.nextSentenceBegin(p)
	}
	return n.previousSentenceBegin(p)
}

// CurrentSentenceEnd returns the sentence-ending punctuation at or after p
// within p's paragraph.
func (n *Navigator) CurrentSentenceEnd(p text.Position) text.Position {
	end := n.ParagraphEnd(p)
	for l := p.Line; l <= end.Line; l++ {
		for _, idx := range matchStarts(sentenceEnd, n.line(l)) {
			if idx > p.Character || l != p.Line {
				return text.Pos(l, idx)
			}
		}
	}
	return n.firstNonWhitespaceInParagraph(p, end)
}

func (n *Navigator) previousSentenceBegin(p text.Position) text.Position {
	begin := n.ParagraphBegin(p)
	for l := p.Line; l >= begin.Line; l-- {
		ends := matchEnds(sentenceEnd, n.line(l))
		for _, idx := range slices.Backward(ends) {
			next := n.RightThroughLineBreaks(text.Pos(l, idx))
			if l != p.Line || (idx < p.Character && next != p) {
				return next
			}
		}
	}

	if begin.Line+1 == p.Line || begin.Line == p.Line {
		return begin
	}
	return text.Pos(begin.Line+1, 0)
}

func (n *Navigator) nextSentenceBegin(p text.Position) text.Position {
	end := n.ParagraphEnd(p)
	for l := p.Line; l <= end.Line; l++ {
		for _, idx := range matchEnds(sentenceEnd, n.line(l)) {
			if idx > p.Character || l != p.Line {
				return n.RightThroughLineBreaks(text.Pos(l, idx))
			}
		}
	}
	return n.firstNonWhitespaceInParagraph(p, end)
}

// firstNonWhitespaceInParagraph handles a cursor on a blank line, which both
// ends one paragraph and starts the next.
func (n *Navigator) firstNonWhitespaceInParagraph(p, paragraphEnd text.Position) text.Position {
	if n.line(p.Line) != "" {
		return paragraphEnd
	}
	for l := p.Line; l <= paragraphEnd.Line; l++ {
		for _, idx := range matchStarts(nonSpace, n.line(l)) {
			if idx > p.Character || l != p.Line {
				return text.Pos(l, idx)
			}
		}
	}
	return paragraphEnd
}
