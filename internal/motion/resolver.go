package motion

import (
	"github.com/dshills/motion/internal/engine/nav"
	"github.com/dshills/motion/internal/engine/text"
)

// DefaultMaxCount caps repeat counts.
const DefaultMaxCount = 10000

// DefaultSectionBoundary is the line prefix that starts a section.
const DefaultSectionBoundary = "{"

// Resolver maps movements to positions and ranges.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	word            *nav.WordClass
	bigWord         *nav.WordClass
	sectionBoundary string
	maxCount        int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithWordClass sets the word class used by word movements.
func WithWordClass(c *nav.WordClass) Option {
	return func(r *Resolver) {
		if c != nil {
			r.word = c
		}
	}
}

// WithBigWordClass sets the word class used by big-word movements.
func WithBigWordClass(c *nav.WordClass) Option {
	return func(r *Resolver) {
		if c != nil {
			r.bigWord = c
		}
	}
}

// WithSectionBoundary sets the default section boundary prefix.
func WithSectionBoundary(b string) Option {
	return func(r *Resolver) {
		r.sectionBoundary = b
	}
}

// WithMaxCount caps repeat counts. Non-positive values are ignored.
func WithMaxCount(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxCount = n
		}
	}
}

// NewResolver creates a resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		word:            nav.DefaultWordClass,
		bigWord:         nav.BigWordClass,
		sectionBoundary: DefaultSectionBoundary,
		maxCount:        DefaultMaxCount,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Navigator returns a navigator over doc using the resolver's word classes.
func (r *Resolver) Navigator(doc text.Document) *nav.Navigator {
	return nav.New(doc, nav.WithWordClass(r.word), nav.WithBigWordClass(r.bigWord))
}

// Position resolves m from pos.
func (r *Resolver) Position(doc text.Document, pos text.Position, m Movement) (text.Position, error) {
	if err := m.Validate(); err != nil {
		return pos, err
	}
	return r.resolve(r.Navigator(doc), pos, m, r.clamp(m.Count), m.WillRepeat), nil
}

// Range resolves m from pos to a range. Line up/down movements produce whole-line
// ranges covering count lines; every other movement spans pos to its target.
func (r *Resolver) Range(doc text.Document, pos text.Position, m Movement) (text.Range, error) {
	if err := m.Validate(); err != nil {
		return text.EmptyRange(pos), err
	}

	n := r.Navigator(doc)
	count := r.clamp(m.Count)
	if count == 0 {
		return text.EmptyRange(pos), nil
	}

	if m.Kind == KindLine {
		switch m.Modifier {
		case ModifierDown:
			start := n.LineBegin(pos)
			if count > 1 {
				pos = n.DownByCount(pos, count-1)
			}
			return text.NewRange(start, n.NextLineBegin(pos)), nil
		case ModifierUp:
			end := n.NextLineBegin(pos)
			if count > 1 {
				pos = n.UpByCount(pos, count-1)
			}
			return text.NewRange(n.LineBegin(pos), end), nil
		}
	}

	return text.NewRange(pos, r.resolve(n, pos, m, count, m.WillRepeat)), nil
}

func (r *Resolver) clamp(count int) int {
	if count > r.maxCount {
		return r.maxCount
	}
	if count < -r.maxCount {
		return -r.maxCount
	}
	return count
}

// resolve applies the count and stall-clamp policy. It never modifies m; the
// remaining count and repeat flag travel as parameters.
func (r *Resolver) resolve(n *nav.Navigator, pos text.Position, m Movement, count int, willRepeat bool) text.Position {
	if count == 0 {
		return pos
	}

	// Find counts are handled by the search itself.
	if count > 1 && m.Kind != KindFind {
		next := r.resolve(n, pos, m, 1, true)
		if next == pos {
			return pos
		}
		final := r.resolve(n, next, m, count-1, willRepeat)
		if final == next {
			return r.resolve(n, pos, m, 1, willRepeat)
		}
		return final
	}

	if m.Kind == KindLetter && count < 0 {
		m.Kind = KindPrevLetter
		return r.resolve(n, pos, m, -count, willRepeat)
	}

	return r.step(n, pos, m, count, willRepeat)
}

// step resolves a single application of m.
func (r *Resolver) step(n *nav.Navigator, pos text.Position, m Movement, count int, willRepeat bool) text.Position {
	switch m.Kind {
	case KindLetter:
		next, _ := n.NextLetter(pos, m.Letter)
		return next

	case KindPrevLetter:
		prev, _ := n.PrevLetter(pos, m.Letter)
		return prev

	case KindAfterLetter:
		next, ok := n.NextLetter(pos, m.Letter)
		if !ok || willRepeat {
			return next
		}
		return next.Translate(0, 1)

	case KindFind:
		return r.find(n, pos, m, count)

	case KindLine:
		switch m.Modifier {
		case ModifierStart:
			return n.LineBegin(pos)
		case ModifierEnd:
			return n.LineEnd(pos)
		case ModifierUp:
			return n.PreviousLineBegin(pos)
		default:
			return n.NextLineBegin(pos)
		}

	case KindDirection:
		switch m.Direction {
		case DirectionUp:
			return n.UpByCount(pos, 1)
		case DirectionDown:
			return n.DownByCount(pos, 1)
		case DirectionLeft:
			return n.LeftThroughLineBreaks(pos)
		default:
			return n.RightThroughLineBreaks(pos)
		}

	case KindWord:
		if m.Modifier == ModifierLeft {
			return n.WordLeft(pos, false)
		}
		if willRepeat || !m.Inside {
			return n.WordRight(pos, false)
		}
		return n.CurrentWordEnd(pos, false).Translate(0, 1)

	case KindBigWord:
		if m.Modifier == ModifierLeft {
			return n.BigWordLeft(pos)
		}
		return n.BigWordRight(pos)

	case KindWordEnd:
		if m.Modifier == ModifierLeft {
			return n.LastWordEnd(pos)
		}
		return n.CurrentWordEnd(pos, false)

	case KindParagraph:
		if m.Modifier == ModifierUp {
			return n.ParagraphBegin(pos)
		}
		return n.ParagraphEnd(pos)

	case KindSentence:
		switch m.Modifier {
		case ModifierLeft:
			return n.SentenceBegin(pos, false)
		case ModifierEnd:
			return n.CurrentSentenceEnd(pos)
		default:
			return n.SentenceBegin(pos, true)
		}

	case KindSection:
		boundary := m.Boundary
		if boundary == "" {
			boundary = r.sectionBoundary
		}
		return n.SectionBoundary(pos, m.Modifier != ModifierUp, boundary)
	}

	return pos
}

func (r *Resolver) find(n *nav.Navigator, pos text.Position, m Movement, count int) text.Position {
	forward := m.Modifier != ModifierLeft
	if count < 0 {
		forward, count = !forward, -count
	}

	var target text.Position
	switch {
	case forward && m.Till:
		target, _ = n.TilForwards(pos, m.Letter, count)
	case forward:
		target, _ = n.FindForwards(pos, m.Letter, count)
	case m.Till:
		target, _ = n.TilBackwards(pos, m.Letter, count)
	default:
		target, _ = n.FindBackwards(pos, m.Letter, count)
	}
	return target
}
