package nav

import (
	"slices"

	"github.com/dshills/motion/internal/engine/text"
)

// FindForwards returns the count-th occurrence of s after p on p's line.
func (n *Navigator) FindForwards(p text.Position, s string, count int) (text.Position, bool) {
	idx, ok := n.find(p, s, count, true)
	if !ok {
		return p, false
	}
	return text.Pos(p.Line, idx), true
}

// FindBackwards returns the count-th occurrence of s before p on p's line.
func (n *Navigator) FindBackwards(p text.Position, s string, count int) (text.Position, bool) {
	idx, ok := n.find(p, s, count, false)
	if !ok {
		return p, false
	}
	return text.Pos(p.Line, idx), true
}

// TilForwards returns the column just before the count-th occurrence of s after p.
func (n *Navigator) TilForwards(p text.Position, s string, count int) (text.Position, bool) {
	idx, ok := n.find(p, s, count, true)
	if !ok {
		return p, false
	}
	return text.Pos(p.Line, idx-1), true
}

// TilBackwards returns the column just after the count-th occurrence of s before p.
func (n *Navigator) TilBackwards(p text.Position, s string, count int) (text.Position, bool) {
	idx, ok := n.find(p, s, count, false)
	if !ok {
		return p, false
	}
	return text.Pos(p.Line, idx+1), true
}

// NextLetter returns the first occurrence of s after p on p's line.
func (n *Navigator) NextLetter(p text.Position, s string) (text.Position, bool) {
	idx := indexFrom([]rune(n.line(p.Line)), []rune(s), p.Character+1)
	if idx < 0 {
		return p, false
	}
	return text.Pos(p.Line, idx), true
}

// PrevLetter returns the last occurrence of s before p on p's line.
func (n *Navigator) PrevLetter(p text.Position, s string) (text.Position, bool) {
	idx := lastIndexFrom([]rune(n.line(p.Line)), []rune(s), p.Character-1)
	if idx < 0 {
		return p, false
	}
	return text.Pos(p.Line, idx), true
}

func (n *Navigator) find(p text.Position, s string, count int, forward bool) (int, bool) {
	line, needle := []rune(n.line(p.Line)), []rune(s)
	idx := p.Character
	for range max(count, 1) {
		if forward {
			idx = indexFrom(line, needle, idx+1)
		} else {
			idx = lastIndexFrom(line, needle, idx-1)
		}
		if idx < 0 {
			return 0, false
		}
	}
	return idx, true
}

// indexFrom returns the first index >= from where needle occurs, or -1.
func indexFrom(hay, needle []rune, from int) int {
	if len(needle) == 0 {
		return -1
	}
	for i := max(from, 0); i+len(needle) <= len(hay); i++ {
		if slices.Equal(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// lastIndexFrom returns the last index <= from where needle occurs, or -1.
// A negative from finds nothing.
func lastIndexFrom(hay, needle []rune, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := min(from, len(hay)-len(needle)); i >= 0; i-- {
		if slices.Equal(hay[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
