package motion

import "fmt"

// Kind identifies a movement type.
type Kind string

// Movement kinds.
const (
	KindWord        Kind = "word"
	KindBigWord     Kind = "bigWord"
	KindWordEnd     Kind = "wordEnd"
	KindLetter      Kind = "letter"
	KindPrevLetter  Kind = "prevLetter"
	KindAfterLetter Kind = "afterLetter"
	KindFind        Kind = "find"
	KindLine        Kind = "line"
	KindDirection   Kind = "direction"
	KindParagraph   Kind = "paragraph"
	KindSentence    Kind = "sentence"
	KindSection     Kind = "section"
)

// Kinds lists every movement kind.
var Kinds = []Kind{
	KindWord, KindBigWord, KindWordEnd, KindLetter, KindPrevLetter, KindAfterLetter,
	KindFind, KindLine, KindDirection, KindParagraph, KindSentence, KindSection,
}

// Modifier refines a movement kind.
type Modifier string

// Movement modifiers.
const (
	ModifierNone  Modifier = ""
	ModifierLeft  Modifier = "left"
	ModifierRight Modifier = "right"
	ModifierStart Modifier = "start"
	ModifierEnd   Modifier = "end"
	ModifierUp    Modifier = "up"
	ModifierDown  Modifier = "down"
)

// Direction is the step direction of a direction movement.
type Direction string

// Directions.
const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Movement describes a requested motion. The zero Count is the identity movement;
// constructors default the count to 1.
type Movement struct {
	Kind      Kind      `json:"type" jsonschema:"required,enum=word,enum=bigWord,enum=wordEnd,enum=letter,enum=prevLetter,enum=afterLetter,enum=find,enum=line,enum=direction,enum=paragraph,enum=sentence,enum=section"`
	Modifier  Modifier  `json:"modifier,omitempty" jsonschema:"enum=left,enum=right,enum=start,enum=end,enum=up,enum=down"`
	Direction Direction `json:"direction,omitempty" jsonschema:"enum=up,enum=down,enum=left,enum=right"`
	Letter    string    `json:"letter,omitempty"`
	Count     int       `json:"count" jsonschema:"default=1"`

	// Inside selects the current word's extent instead of jumping to the next word.
	Inside bool `json:"inside,omitempty"`
	// Till stops a find one character short of the match.
	Till bool `json:"till,omitempty"`
	// WillRepeat suppresses the extra step past the letter of an afterLetter movement.
	WillRepeat bool `json:"willRepeat,omitempty"`
	// Boundary is the line prefix that starts a section.
	Boundary string `json:"boundary,omitempty"`
}

// Word returns a word movement. Negative counts move left.
func Word(count int) Movement {
	if count < 0 {
		return Movement{Kind: KindWord, Modifier: ModifierLeft, Count: -count}
	}
	return Movement{Kind: KindWord, Modifier: ModifierRight, Count: count}
}

// Letter returns a movement to the count-th occurrence of letter on the line.
// Negative counts search backward.
func Letter(letter string, count int) Movement {
	return Movement{Kind: KindLetter, Letter: letter, Count: count}
}

// AfterLetter returns a movement to just past the next occurrence of letter.
func AfterLetter(letter string) Movement {
	return Movement{Kind: KindAfterLetter, Letter: letter, Count: 1}
}

// Line returns a line movement with the given modifier.
func Line(mod Modifier, count int) Movement {
	return Movement{Kind: KindLine, Modifier: mod, Count: count}
}

// Step returns a single directional step.
func Step(d Direction) Movement {
	return Movement{Kind: KindDirection, Direction: d, Count: 1}
}

// Find returns a find (or till) movement for the count-th occurrence of letter.
func Find(letter string, forward, till bool, count int) Movement {
	mod := ModifierRight
	if !forward {
		mod = ModifierLeft
	}
	return Movement{Kind: KindFind, Modifier: mod, Letter: letter, Till: till, Count: count}
}

// WithCount returns a copy of m with the given count.
func (m Movement) WithCount(count int) Movement {
	m.Count = count
	return m
}

// WithInside returns a copy of m with Inside set.
func (m Movement) WithInside(inside bool) Movement {
	m.Inside = inside
	return m
}

// String returns a compact representation of the movement.
func (m Movement) String() string {
	s := string(m.Kind)
	if m.Modifier != "" {
		s += ":" + string(m.Modifier)
	}
	if m.Direction != "" {
		s += ":" + string(m.Direction)
	}
	if m.Letter != "" {
		s += fmt.Sprintf(" %q", m.Letter)
	}
	return fmt.Sprintf("%s x%d", s, m.Count)
}

// Validate reports malformed movements.
func (m Movement) Validate() error {
	switch m.Kind {
	case KindWord, KindBigWord, KindWordEnd, KindFind:
		return m.allow(ModifierNone, ModifierLeft, ModifierRight)
	case KindSentence:
		return m.allow(ModifierNone, ModifierLeft, ModifierRight, ModifierEnd)
	case KindParagraph, KindSection:
		return m.allow(ModifierNone, ModifierUp, ModifierDown)
	case KindLine:
		return m.allow(ModifierStart, ModifierEnd, ModifierUp, ModifierDown)
	case KindLetter, KindPrevLetter, KindAfterLetter:
		return nil
	case KindDirection:
		switch m.Direction {
		case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownDirection, m.Direction)
	default:
		return fmt.Errorf("%w: type %q", ErrUnknownMovement, m.Kind)
	}
}

func (m Movement) allow(mods ...Modifier) error {
	for _, mod := range mods {
		if m.Modifier == mod {
			return nil
		}
	}
	return fmt.Errorf("%w: %s with modifier %q", ErrUnknownMovement, m.Kind, m.Modifier)
}
