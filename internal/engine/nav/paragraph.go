package nav

import (
	"strings"

	"github.com/dshills/motion/internal/engine/text"
)

// ParagraphBegin returns the start of the blank line above p's paragraph, or the
// document start. Blank lines under p are skipped first.
func (n *Navigator) ParagraphBegin(p text.Position) text.Position {
	l := p.Line
	for n.line(l) == "" && l > 0 {
		l--
	}
	for l > 0 && n.line(l) != "" {
		l--
	}
	return text.Pos(l, 0)
}

// ParagraphEnd returns the blank line below p's paragraph, or the document end.
// Blank lines under p are skipped first.
func (n *Navigator) ParagraphEnd(p text.Position) text.Position {
	last := n.lastLine()
	l := p.Line
	for n.line(l) == "" && l < last {
		l++
	}
	for n.line(l) != "" && l < last {
		l++
	}
	return n.LineEnd(text.Pos(l, 0))
}

// SectionBoundary scans from the line after (forward) or before p for a line
// starting with boundary and returns its first non-blank character. The scan
// stops at the document edges.
func (n *Navigator) SectionBoundary(p text.Position, forward bool, boundary string) text.Position {
	last := n.lastLine()
	if (forward && p.Line >= last) || (!forward && p.Line <= 0) {
		return n.FirstLineNonBlank(p)
	}

	l := p.Line - 1
	if forward {
		l = p.Line + 1
	}
	for !strings.HasPrefix(n.line(l), boundary) {
		if forward {
			if l == last {
				break
			}
			l++
		} else {
			if l == 0 {
				break
			}
			l--
		}
	}
	return n.FirstLineNonBlank(text.Pos(l, 0))
}
