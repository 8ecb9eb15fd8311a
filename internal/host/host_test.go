package host

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/motion/internal/edit"
	"github.com/dshills/motion/internal/engine/text"
)

var _ Host = (*Memory)(nil)

func TestParseMarked(t *testing.T) {
	plain, sels := ParseMarked("he|llo\n|wör|ld")

	assert.Equal(t, "hello\nwörld", plain)
	assert.Equal(t, []text.Selection{
		text.NewCursor(text.Pos(0, 2)),
		text.NewCursor(text.Pos(1, 0)),
		text.NewCursor(text.Pos(1, 3)),
	}, sels)
}

func TestParseMarkedCountsRunes(t *testing.T) {
	tests := []struct {
		in   string
		want text.Position
	}{
		{"é|x", text.Pos(0, 1)},
		{"日本語|", text.Pos(0, 3)},
		{"a\nüß|t", text.Pos(1, 2)},
		{"🙂 |x", text.Pos(0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, sels := ParseMarked(tt.in)
			assert.Equal(t, []text.Selection{text.NewCursor(tt.want)}, sels)
		})
	}
}

func TestParseMarkedWithoutMarks(t *testing.T) {
	plain, sels := ParseMarked("abc")

	assert.Equal(t, "abc", plain)
	assert.Equal(t, []text.Selection{text.NewCursor(text.Position{})}, sels)
}

func TestMarkedRoundTrip(t *testing.T) {
	for _, s := range []string{"|", "a|b\n|", "|x\ny|\nz", "é|é"} {
		assert.Equal(t, s, NewMemoryFromMarked(s).Marked())
	}
}

func TestApplyEditMovesSelections(t *testing.T) {
	m := NewMemoryFromMarked("hello |world", WithClipboard(&MemoryClipboard{}))

	batch, err := edit.Compose(m, func(b *edit.Builder) {
		b.Insert(text.Pos(0, 0), ">> ")
	})
	require.NoError(t, err)
	require.NoError(t, m.ApplyEdit(context.Background(), batch))

	assert.Equal(t, ">> hello |world", m.Marked())
	assert.Equal(t, int64(2), m.Version())
}

func TestApplyEditStaleVersion(t *testing.T) {
	m := NewMemoryFromString("abc", WithClipboard(&MemoryClipboard{}))
	batch, err := edit.Compose(m, func(b *edit.Builder) {
		b.Delete(text.NewRange(text.Pos(0, 0), text.Pos(0, 1)))
	})
	require.NoError(t, err)
	require.NoError(t, m.ApplyEdit(context.Background(), batch))

	err = m.ApplyEdit(context.Background(), batch)
	assert.ErrorIs(t, err, edit.ErrVersionMismatch)
	assert.Equal(t, "bc", m.Text())
}

func TestApplyEditCanceled(t *testing.T) {
	m := NewMemoryFromString("abc", WithClipboard(&MemoryClipboard{}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.ApplyEdit(ctx, edit.Batch{Version: m.Version()})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetSelectionsClamps(t *testing.T) {
	m := NewMemoryFromString("ab\ncd", WithClipboard(&MemoryClipboard{}))

	m.SetSelections([]text.Selection{text.NewSelection(text.Pos(0, 9), text.Pos(7, 0))})

	assert.Equal(t, []text.Selection{text.NewSelection(text.Pos(0, 2), text.Pos(1, 2))}, m.Selections())
}

func TestSelectionsReturnsCopy(t *testing.T) {
	m := NewMemoryFromMarked("a|b", WithClipboard(&MemoryClipboard{}))

	sels := m.Selections()
	sels[0] = text.NewCursor(text.Pos(0, 0))

	assert.Equal(t, text.Pos(0, 1), m.Selections()[0].Active)
}

func TestCopyCommand(t *testing.T) {
	cb := &MemoryClipboard{}
	m := NewMemoryFromString("hello world\nsecond line", WithClipboard(cb))
	m.SetSelections([]text.Selection{
		text.NewSelection(text.Pos(0, 0), text.Pos(0, 5)),
		text.NewSelection(text.Pos(1, 6), text.Pos(1, 0)),
	})

	require.NoError(t, m.RunCommand(context.Background(), CopyCommand, nil))

	got, err := cb.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "hello\nsecond", got)
	assert.Equal(t, []string{CopyCommand}, m.CommandHistory())
}

func TestRunCommandUnknown(t *testing.T) {
	m := NewMemoryFromString("", WithClipboard(&MemoryClipboard{}))

	err := m.RunCommand(context.Background(), "no.such.command", nil)

	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRegisteredCommandReceivesArgs(t *testing.T) {
	var got map[string]any
	boom := errors.New("boom")
	m := NewMemoryFromString("",
		WithClipboard(&MemoryClipboard{}),
		WithCommand("custom", func(_ context.Context, _ *Memory, args map[string]any) error {
			got = args
			return boom
		}),
	)

	err := m.RunCommand(context.Background(), "custom", map[string]any{"n": 2})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, map[string]any{"n": 2}, got)
}
