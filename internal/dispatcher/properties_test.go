package dispatcher_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/engine/cursor"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/motion"
)

var movements = []motion.Movement{
	motion.Word(1), motion.Word(3), motion.Word(-1), motion.Word(-2),
	{Kind: motion.KindBigWord, Modifier: motion.ModifierRight, Count: 1},
	{Kind: motion.KindWordEnd, Modifier: motion.ModifierRight, Count: 2},
	motion.Letter("a", 1), motion.Letter("a", 2), motion.Letter("b", -1),
	motion.AfterLetter("."),
	motion.Line(motion.ModifierStart, 1), motion.Line(motion.ModifierEnd, 1),
	motion.Line(motion.ModifierDown, 2), motion.Line(motion.ModifierUp, 1),
	motion.Step(motion.DirectionLeft), motion.Step(motion.DirectionRight),
	motion.Step(motion.DirectionUp), motion.Step(motion.DirectionDown),
	{Kind: motion.KindParagraph, Modifier: motion.ModifierDown, Count: 1},
	{Kind: motion.KindSentence, Modifier: motion.ModifierRight, Count: 1},
	motion.Find("b", true, true, 1),
}

func drawDocument(t *rapid.T) string {
	return rapid.StringOfN(rapid.RuneFrom([]rune("ab .-\n9é")), 0, 40, -1).Draw(t, "text")
}

func drawPosition(t *rapid.T, doc text.Document, label string) text.Position {
	line := rapid.IntRange(0, doc.LineCount()-1).Draw(t, label+".line")
	col := rapid.IntRange(0, text.LineLength(doc, line)).Draw(t, label+".col")
	return text.Pos(line, col)
}

func drawHost(t *rapid.T) *host.Memory {
	h := host.NewMemoryFromString(drawDocument(t), host.WithClipboard(&host.MemoryClipboard{}))
	n := rapid.IntRange(1, 4).Draw(t, "selections")
	sels := make([]text.Selection, n)
	for i := range sels {
		sels[i] = text.NewSelection(drawPosition(t, h, "anchor"), drawPosition(t, h, "active"))
	}
	h.SetSelections(cursor.Normalize(sels))
	return h
}

func drawRequest(t *rapid.T) command.Request {
	m := rapid.SampledFrom(movements).Draw(t, "movement")
	switch rapid.IntRange(0, 3).Draw(t, "command") {
	case 0:
		return command.Move(m)
	case 1:
		return command.Select(m)
	case 2:
		return command.Delete(m)
	default:
		return command.Copy(m)
	}
}

func TestPropertyIdentityCountZero(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	rapid.Check(t, func(t *rapid.T) {
		h := drawHost(t)
		m := rapid.SampledFrom(movements).Draw(t, "movement").WithCount(0)
		before := h.Selections()

		sels, err := d.Run(context.Background(), h, command.Move(m))
		require.NoError(t, err)

		want := make([]text.Selection, len(before))
		for i, s := range before {
			want[i] = text.NewCursor(s.Active)
		}
		assert.Equal(t, cursor.Normalize(want), sels)
	})
}

func TestPropertySelectNeverShrinks(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	rapid.Check(t, func(t *rapid.T) {
		h := drawHost(t)
		before := h.Selections()
		m := rapid.SampledFrom(movements).Draw(t, "movement")

		// Select maps each selection independently; check one at a time so
		// normalization cannot reorder the pairs.
		for _, s := range before {
			h.SetSelections([]text.Selection{s})
			sels, err := d.Run(context.Background(), h, command.Select(m))
			require.NoError(t, err)
			require.Len(t, sels, 1)

			got := sels[0]
			assert.False(t, got.Start().After(s.Start()), "start moved right: %s -> %s", s, got)
			assert.False(t, got.End().Before(s.End()), "end moved left: %s -> %s", s, got)
			if !s.IsEmpty() {
				assert.Equal(t, s.IsReversed(), got.IsReversed())
			}
		}
	})
}

func TestPropertyOutputIsNormalized(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	rapid.Check(t, func(t *rapid.T) {
		h := drawHost(t)
		req := drawRequest(t)
		if rapid.Bool().Draw(t, "fanout") {
			n := len(h.Selections())
			idx := rapid.SliceOfN(rapid.IntRange(-n-1, n), 0, 3).Draw(t, "cursors")
			req = command.Cursor(idx, req)
		}

		sels, err := d.Run(context.Background(), h, req)
		require.NoError(t, err)

		assert.True(t, cursor.IsNormalized(sels), "%v", sels)
		for _, s := range sels {
			assert.True(t, text.IsValid(h, s.Anchor) && text.IsValid(h, s.Active), "%s outside document", s)
		}
	})
}

func TestPropertyDeleteCollapsesCursor(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	rapid.Check(t, func(t *rapid.T) {
		h := host.NewMemoryFromString(drawDocument(t), host.WithClipboard(&host.MemoryClipboard{}))
		p := drawPosition(t, h, "cursor")
		h.SetSelections([]text.Selection{text.NewCursor(p)})
		m := rapid.SampledFrom(movements).Draw(t, "movement")

		r, err := d.Resolver().Range(h, p, m)
		require.NoError(t, err)

		sels, err := d.Run(context.Background(), h, command.Delete(m))
		require.NoError(t, err)

		require.True(t, r.Contains(p))
		assert.Equal(t, []text.Selection{text.NewCursor(r.Start)}, sels)
	})
}

func TestPropertyCopyIsNonMutating(t *testing.T) {
	d := dispatcher.NewWithDefaults()
	rapid.Check(t, func(t *rapid.T) {
		h := drawHost(t)
		before := h.Selections()
		content := h.Text()
		m := rapid.SampledFrom(movements).Draw(t, "movement")

		sels, err := d.Run(context.Background(), h, command.Copy(m))
		require.NoError(t, err)

		assert.Equal(t, before, sels)
		assert.Equal(t, before, h.Selections())
		assert.Equal(t, content, h.Text())
	})
}
