package nav

import (
	"iter"
	"slices"

	"github.com/dshills/motion/internal/engine/text"
)

// WordSpan is one word on a line. End is the column of its last character.
type WordSpan struct {
	Start text.Position
	End   text.Position
	Word  string
}

// WordLeft returns the nearest word start before p, searching earlier lines when
// p's line has none. With inclusive, a word starting at p qualifies.
func (n *Navigator) WordLeft(p text.Position, inclusive bool) text.Position {
	return n.wordLeft(p, n.word, inclusive)
}

// WordRight returns the nearest word start after p, searching later lines when
// p's line has none. With inclusive, a word starting at p qualifies.
func (n *Navigator) WordRight(p text.Position, inclusive bool) text.Position {
	return n.wordRight(p, n.word, inclusive)
}

// BigWordLeft is WordLeft over whitespace-delimited words.
func (n *Navigator) BigWordLeft(p text.Position) text.Position {
	return n.wordLeft(p, n.bigWord, false)
}

// BigWordRight is WordRight over whitespace-delimited words.
func (n *Navigator) BigWordRight(p text.Position) text.Position {
	return n.wordRight(p, n.bigWord, false)
}

// CurrentWordEnd returns the last character of the word at or after p.
func (n *Navigator) CurrentWordEnd(p text.Position, inclusive bool) text.Position {
	return n.currentWordEnd(p, n.word, inclusive)
}

// CurrentBigWordEnd is CurrentWordEnd over whitespace-delimited words.
func (n *Navigator) CurrentBigWordEnd(p text.Position, inclusive bool) text.Position {
	return n.currentWordEnd(p, n.bigWord, inclusive)
}

// LastWordEnd returns the end of the word before the first word ending at or
// after p.
func (n *Navigator) LastWordEnd(p text.Position) text.Position {
	return n.lastWordEnd(p, n.word)
}

// LastBigWordEnd is LastWordEnd over whitespace-delimited words.
func (n *Navigator) LastBigWordEnd(p text.Position) text.Position {
	return n.lastWordEnd(p, n.bigWord)
}

func (n *Navigator) wordLeft(p text.Position, c *WordClass, inclusive bool) text.Position {
	for l := min(p.Line, n.lastLine()); l >= 0; l-- {
		starts := c.Starts(n.line(l))
		for _, idx := range slices.Backward(starts) {
			if l != p.Line || idx < p.Character || (inclusive && idx == p.Character) {
				return text.Pos(l, idx)
			}
		}
	}
	return n.DocumentBegin()
}

func (n *Navigator) wordRight(p text.Position, c *WordClass, inclusive bool) text.Position {
	for l := max(p.Line, 0); l < n.doc.LineCount(); l++ {
		for _, idx := range c.Starts(n.line(l)) {
			if l != p.Line || idx > p.Character || (inclusive && idx == p.Character) {
				return text.Pos(l, idx)
			}
		}
	}
	return n.DocumentEnd()
}

func (n *Navigator) currentWordEnd(p text.Position, c *WordClass, inclusive bool) text.Position {
	for l := max(p.Line, 0); l < n.doc.LineCount(); l++ {
		for _, idx := range c.Ends(n.line(l)) {
			if l != p.Line || idx > p.Character || (inclusive && idx == p.Character) {
				return text.Pos(l, idx)
			}
		}
	}
	return n.DocumentEnd()
}

func (n *Navigator) lastWordEnd(p text.Position, c *WordClass) text.Position {
	for l := max(p.Line, 0); l < n.doc.LineCount(); l++ {
		ends := c.Ends(n.line(l))
		if len(ends) == 0 {
			continue
		}
		i := slices.IndexFunc(ends, func(idx int) bool {
			return idx >= p.Character || l != p.Line
		})
		switch {
		case i == -1:
			return text.Pos(l, ends[len(ends)-1])
		case i > 0:
			return text.Pos(l, ends[i-1])
		default:
			return text.Pos(l, 0)
		}
	}
	return n.DocumentEnd()
}

// Words returns the words of p's line, starting with the word that contains p or
// lies left of it. The sequence ends at the end of the line; it never continues
// onto the next line. Each call restarts the scan.
func (n *Navigator) Words(p text.Position) iter.Seq[WordSpan] {
	return func(yield func(WordSpan) bool) {
		line := n.line(p.Line)
		if line == "" {
			return
		}
		runes := []rune(line)

		// On a non-empty line every match is non-empty, so starts and ends pair up.
		starts, ends := n.word.Starts(line), n.word.Ends(line)
		first := 0
		for i, s := range starts {
			if s <= p.Character {
				first = i
			}
		}

		for i := first; i < len(starts) && i < len(ends); i++ {
			span := WordSpan{
				Start: text.Pos(p.Line, starts[i]),
				End:   text.Pos(p.Line, ends[i]),
				Word:  string(runes[starts[i] : ends[i]+1]),
			}
			if !yield(span) {
				return
			}
		}
	}
}
