package nav

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/motion/internal/engine/text"
)

func navFor(s string) *Navigator {
	return New(text.Lines(strings.Split(s, "\n")))
}

func TestWordClassStarts(t *testing.T) {
	tests := []struct {
		name  string
		class *WordClass
		line  string
		want  []int
	}{
		{"plain words", DefaultWordClass, "hello world how are you", []int{0, 6, 12, 16, 20}},
		{"punctuation runs", DefaultWordClass, "foo.bar(baz)", []int{0, 3, 4, 7, 8, 11}},
		{"separator run", DefaultWordClass, "a := b", []int{0, 2, 5}},
		{"big words", BigWordClass, "foo.bar(baz) x", []int{0, 13}},
		{"empty line", DefaultWordClass, "", []int{0}},
		{"blank line", DefaultWordClass, "   ", nil},
		{"unicode columns", DefaultWordClass, "héllo wörld", []int{0, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.class.Starts(tt.line))
		})
	}
}

func TestWordClassEnds(t *testing.T) {
	assert.Equal(t, []int{4, 10, 14, 18, 22}, DefaultWordClass.Ends("hello world how are you"))
	assert.Equal(t, []int{2, 3, 6, 7, 10, 11}, DefaultWordClass.Ends("foo.bar(baz)"))
	assert.Nil(t, DefaultWordClass.Ends(""))
}

func TestCustomWordClass(t *testing.T) {
	c, err := NewWordClass("-]^\\")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, c.Starts("a-b]"))
	assert.Equal(t, "-]^\\", c.Separators())
}

func TestWordRight(t *testing.T) {
	n := navFor("hello world how are you")

	assert.Equal(t, text.Pos(0, 6), n.WordRight(text.Pos(0, 0), false))
	assert.Equal(t, text.Pos(0, 0), n.WordRight(text.Pos(0, 0), true))
	assert.Equal(t, text.Pos(0, 12), n.WordRight(text.Pos(0, 7), false))
	assert.Equal(t, text.Pos(0, 23), n.WordRight(text.Pos(0, 20), false), "no further word: document end")
}

func TestWordLeft(t *testing.T) {
	n := navFor("abc\n\nxyz foo")

	assert.Equal(t, text.Pos(2, 4), n.WordLeft(text.Pos(2, 6), false))
	assert.Equal(t, text.Pos(2, 4), n.WordLeft(text.Pos(2, 4), true))
	assert.Equal(t, text.Pos(2, 0), n.WordLeft(text.Pos(2, 4), false))
	assert.Equal(t, text.Pos(1, 0), n.WordLeft(text.Pos(2, 0), false), "empty line counts as a word")
	assert.Equal(t, text.Pos(0, 0), n.WordLeft(text.Pos(0, 0), false))
}

func TestWordRightAcrossLines(t *testing.T) {
	n := navFor("\nline one\nanother longer line\nthird line\nlast line")

	assert.Equal(t, text.Pos(1, 5), n.WordRight(text.Pos(1, 0), false))
	assert.Equal(t, text.Pos(2, 0), n.WordRight(text.Pos(1, 5), false))
	assert.Equal(t, text.Pos(3, 6), n.WordRight(text.Pos(3, 5), false))
	assert.Equal(t, text.Pos(4, 0), n.WordRight(text.Pos(3, 6), false))
	assert.Equal(t, text.Pos(4, 9), n.WordRight(text.Pos(4, 9), false))
}

func TestBigWords(t *testing.T) {
	n := navFor("foo.bar baz(1)")

	assert.Equal(t, text.Pos(0, 8), n.BigWordRight(text.Pos(0, 0)))
	assert.Equal(t, text.Pos(0, 0), n.BigWordLeft(text.Pos(0, 8)))
	assert.Equal(t, text.Pos(0, 6), n.CurrentBigWordEnd(text.Pos(0, 0), false))
}

func TestWordEnds(t *testing.T) {
	n := navFor("hello world how")

	assert.Equal(t, text.Pos(0, 4), n.CurrentWordEnd(text.Pos(0, 0), false))
	assert.Equal(t, text.Pos(0, 4), n.CurrentWordEnd(text.Pos(0, 4), true))
	assert.Equal(t, text.Pos(0, 10), n.CurrentWordEnd(text.Pos(0, 4), false))
	assert.Equal(t, text.Pos(0, 4), n.LastWordEnd(text.Pos(0, 6)))
	assert.Equal(t, text.Pos(0, 14), n.LastWordEnd(text.Pos(0, 15)))
}

func TestSentences(t *testing.T) {
	n := navFor("One. Two! Three?\nFour.")

	assert.Equal(t, text.Pos(0, 5), n.SentenceBegin(text.Pos(0, 0), true))
	assert.Equal(t, text.Pos(0, 10), n.SentenceBegin(text.Pos(0, 5), true))
	assert.Equal(t, text.Pos(1, 0), n.SentenceBegin(text.Pos(0, 10), true))
	assert.Equal(t, text.Pos(0, 5), n.SentenceBegin(text.Pos(0, 10), false))
	assert.Equal(t, text.Pos(0, 3), n.CurrentSentenceEnd(text.Pos(0, 0)))
}

func TestSentenceFromBlankLine(t *testing.T) {
	n := navFor("end.\n\n  Next one")

	assert.Equal(t, text.Pos(2, 2), n.SentenceBegin(text.Pos(1, 0), true))
}

func TestParagraphs(t *testing.T) {
	n := navFor("a\nb\n\nc\nd\n\n\ne")

	tests := []struct {
		name string
		from text.Position
		end  text.Position
		beg  text.Position
	}{
		{"first paragraph", text.Pos(0, 0), text.Pos(2, 0), text.Pos(0, 0)},
		{"second paragraph", text.Pos(4, 0), text.Pos(5, 0), text.Pos(2, 0)},
		{"blank line skips down", text.Pos(2, 0), text.Pos(5, 0), text.Pos(0, 0)},
		{"blank run skips up", text.Pos(6, 0), text.Pos(7, 1), text.Pos(2, 0)},
		{"last line", text.Pos(7, 0), text.Pos(7, 1), text.Pos(6, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.end, n.ParagraphEnd(tt.from), "end")
			assert.Equal(t, tt.beg, n.ParagraphBegin(tt.from), "begin")
		})
	}
}

func TestSectionBoundary(t *testing.T) {
	n := navFor("func a() {\n  x\n}\n{ block\nend")

	assert.Equal(t, text.Pos(3, 0), n.SectionBoundary(text.Pos(0, 0), true, "{"))
	assert.Equal(t, text.Pos(3, 0), n.SectionBoundary(text.Pos(4, 0), false, "{"))
	assert.Equal(t, text.Pos(0, 0), n.SectionBoundary(text.Pos(2, 0), false, "{"))
	assert.Equal(t, text.Pos(4, 0), n.SectionBoundary(text.Pos(4, 0), true, "{"))
	assert.Equal(t, text.Pos(1, 2), n.SectionBoundary(text.Pos(0, 0), true, "  "))
}

func TestFindTil(t *testing.T) {
	n := navFor("hello world how are you")

	pos, ok := n.FindForwards(text.Pos(0, 0), "o", 1)
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 4), pos)

	pos, ok = n.FindForwards(text.Pos(0, 0), "o", 2)
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 7), pos)

	pos, ok = n.FindForwards(text.Pos(0, 0), "o", 5)
	assert.False(t, ok, "only four occurrences")
	assert.Equal(t, text.Pos(0, 0), pos)

	pos, ok = n.FindBackwards(text.Pos(0, 21), "o", 2)
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 7), pos)

	pos, _ = n.TilForwards(text.Pos(0, 0), "o", 1)
	assert.Equal(t, text.Pos(0, 3), pos)

	pos, _ = n.TilBackwards(text.Pos(0, 21), "o", 1)
	assert.Equal(t, text.Pos(0, 14), pos)

	_, ok = n.FindBackwards(text.Pos(0, 0), "h", 1)
	assert.False(t, ok)

	_, ok = n.FindForwards(text.Pos(0, 0), "", 1)
	assert.False(t, ok)
}

func TestLetters(t *testing.T) {
	n := navFor("hello world\nsecond")

	pos, ok := n.NextLetter(text.Pos(0, 4), "o")
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 7), pos)

	_, ok = n.NextLetter(text.Pos(0, 7), "o")
	assert.False(t, ok, "search stays on the line")

	_, ok = n.PrevLetter(text.Pos(0, 4), "o")
	assert.False(t, ok)

	pos, ok = n.PrevLetter(text.Pos(0, 7), "o")
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 4), pos)

	pos, ok = n.NextLetter(text.Pos(0, 0), "wo")
	assert.True(t, ok)
	assert.Equal(t, text.Pos(0, 6), pos)
}

func TestHorizontal(t *testing.T) {
	n := navFor("ab\ncd")

	assert.Equal(t, text.Pos(1, 0), n.RightThroughLineBreaks(text.Pos(0, 1)))
	assert.Equal(t, text.Pos(1, 0), n.RightThroughLineBreaks(text.Pos(0, 2)))
	assert.Equal(t, text.Pos(1, 2), n.RightThroughLineBreaks(text.Pos(1, 1)))
	assert.Equal(t, text.Pos(1, 2), n.RightThroughLineBreaks(text.Pos(1, 2)))
	assert.Equal(t, text.Pos(0, 2), n.LeftThroughLineBreaks(text.Pos(1, 0)))
	assert.Equal(t, text.Pos(0, 0), n.LeftThroughLineBreaks(text.Pos(0, 1)))
	assert.Equal(t, text.Pos(0, 0), n.LeftThroughLineBreaks(text.Pos(0, 0)))
}

func TestRightThroughLineBreaksLastLine(t *testing.T) {
	n := navFor("ab\ncde")

	assert.Equal(t, text.Pos(1, 3), n.RightThroughLineBreaks(text.Pos(1, 2)), "last character steps to the line end")
	assert.Equal(t, text.Pos(1, 3), n.RightThroughLineBreaks(text.Pos(1, 3)), "document end is a no-op")
	assert.Equal(t, text.Pos(1, 0), n.RightThroughLineBreaks(text.Pos(0, 1)), "earlier lines wrap")
}

func TestVertical(t *testing.T) {
	n := navFor("long line\nab\nlonger")

	assert.Equal(t, text.Pos(1, 2), n.DownByCount(text.Pos(0, 7), 1))
	assert.Equal(t, text.Pos(2, 6), n.DownByCount(text.Pos(0, 7), 5))
	assert.Equal(t, text.Pos(0, 3), n.UpByCount(text.Pos(2, 3), 9))
	assert.Equal(t, text.Pos(1, 2), n.Down(text.Pos(0, 7), 7))
	assert.Equal(t, text.Pos(2, 1), n.Down(text.Pos(2, 1), 0))
	assert.Equal(t, text.Pos(0, 0), n.Up(text.Pos(0, 0), 0))
}

func TestLinePositions(t *testing.T) {
	n := navFor("  indented\nlast")

	assert.Equal(t, text.Pos(0, 2), n.FirstLineNonBlank(text.Pos(0, 7)))
	assert.Equal(t, text.Pos(1, 0), n.NextLineBegin(text.Pos(0, 5)))
	assert.Equal(t, text.Pos(1, 4), n.NextLineBegin(text.Pos(1, 1)))
	assert.Equal(t, text.Pos(0, 0), n.PreviousLineBegin(text.Pos(1, 3)))
	assert.Equal(t, text.Pos(0, 0), n.PreviousLineBegin(text.Pos(0, 3)))
	assert.Equal(t, text.Pos(1, 4), n.DocumentEnd())
	assert.True(t, n.IsAtDocumentEnd(text.Pos(1, 4)))
	assert.False(t, n.IsAtDocumentEnd(text.Pos(0, 10)))
}

func collect(n *Navigator, p text.Position) []string {
	var words []string
	for w := range n.Words(p) {
		words = append(words, w.Word)
	}
	return words
}

func TestWords(t *testing.T) {
	assert.Equal(t, []string{"hey", "54"}, collect(navFor("hey 54\ni am 23.5"), text.Pos(0, 0)))
	assert.Equal(t, []string{"54"}, collect(navFor("hey 54\ni am 23.5"), text.Pos(0, 5)))
	assert.Equal(t, []string{"x", "5", "y"}, collect(navFor("x 5 y"), text.Pos(0, 0)))
	assert.Equal(t, []string{"i", "am", "-", "23", ".", "5"}, collect(navFor("i am -23.5"), text.Pos(0, 0)))
	assert.Equal(t, []string{"b"}, collect(navFor("  b"), text.Pos(0, 0)))
	assert.Nil(t, collect(navFor("\nnext"), text.Pos(0, 0)))
	assert.Nil(t, collect(navFor("   \nnext"), text.Pos(0, 1)))
}

func TestWordsSpans(t *testing.T) {
	n := navFor("hey 54")
	var spans []WordSpan
	for w := range n.Words(text.Pos(0, 0)) {
		spans = append(spans, w)
		break
	}

	require.Len(t, spans, 1)
	assert.Equal(t, WordSpan{Start: text.Pos(0, 0), End: text.Pos(0, 2), Word: "hey"}, spans[0])
}
