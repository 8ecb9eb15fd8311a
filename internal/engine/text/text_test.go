package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		a, b Position
		want int
	}{
		{Pos(0, 0), Pos(0, 0), 0},
		{Pos(0, 1), Pos(0, 2), -1},
		{Pos(1, 0), Pos(0, 9), 1},
		{Pos(2, 3), Pos(2, 1), 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.Compare(tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestEarlierLaterOf(t *testing.T) {
	a, b := Pos(1, 4), Pos(0, 9)
	assert.Equal(t, b, EarlierOf(a, b))
	assert.Equal(t, a, LaterOf(a, b))
	assert.Equal(t, a, EarlierOf(a, a))
}

func TestTranslateClampsAtZero(t *testing.T) {
	assert.Equal(t, Pos(1, 5), Pos(0, 2).Translate(1, 3))
	assert.Equal(t, Pos(0, 0), Pos(0, 2).Translate(-1, -3))
}

func TestAdvanceByText(t *testing.T) {
	assert.Equal(t, Pos(2, 7), Pos(2, 4).AdvanceByText("abc"))
	assert.Equal(t, Pos(4, 2), Pos(2, 4).AdvanceByText("x\ny\nzz"))
	assert.Equal(t, Pos(3, 0), Pos(2, 4).AdvanceByText("tail\n"))
	assert.Equal(t, Pos(0, 3), Pos(0, 1).AdvanceByText("éé"))
}

func TestNewRangeNormalizes(t *testing.T) {
	r := NewRange(Pos(3, 1), Pos(1, 7))
	assert.Equal(t, Pos(1, 7), r.Start)
	assert.Equal(t, Pos(3, 1), r.End)
	assert.False(t, r.IsSingleLine())
}

func TestRangeContainsIsInclusive(t *testing.T) {
	r := NewRange(Pos(0, 2), Pos(0, 5))
	assert.True(t, r.Contains(Pos(0, 2)))
	assert.True(t, r.Contains(Pos(0, 5)))
	assert.False(t, r.Contains(Pos(0, 6)))
	assert.True(t, EmptyRange(Pos(1, 1)).Contains(Pos(1, 1)))
}

func TestRangeIntersectionUnion(t *testing.T) {
	a := NewRange(Pos(0, 0), Pos(0, 5))
	b := NewRange(Pos(0, 3), Pos(1, 0))
	c := NewRange(Pos(2, 0), Pos(2, 1))

	got, ok := a.Intersection(b)
	assert.True(t, ok)
	assert.Equal(t, NewRange(Pos(0, 3), Pos(0, 5)), got)

	_, ok = a.Intersection(c)
	assert.False(t, ok)

	assert.Equal(t, NewRange(Pos(0, 0), Pos(2, 1)), a.Union(c))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(NewRange(Pos(0, 5), Pos(0, 8))))
}

func TestSelectionDirection(t *testing.T) {
	fwd := NewSelection(Pos(0, 1), Pos(0, 4))
	rev := NewSelection(Pos(0, 4), Pos(0, 1))

	assert.False(t, fwd.IsReversed())
	assert.True(t, rev.IsReversed())
	assert.Equal(t, fwd.Range(), rev.Range())
	assert.Equal(t, Pos(0, 1), rev.Start())
	assert.Equal(t, Pos(0, 4), rev.End())
	assert.True(t, NewCursor(Pos(2, 2)).IsEmpty())
	assert.Equal(t, "Cursor(2:2)", NewCursor(Pos(2, 2)).String())
}

func TestValidatePosition(t *testing.T) {
	doc := Lines{"hello", "", "wörld"}

	tests := []struct {
		in, want Position
	}{
		{Pos(0, 3), Pos(0, 3)},
		{Pos(0, 9), Pos(0, 5)},
		{Pos(1, 4), Pos(1, 0)},
		{Pos(7, 0), Pos(2, 5)},
		{Pos(-1, 3), Pos(0, 0)},
		{Pos(2, -2), Pos(2, 0)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidatePosition(doc, tt.in), "input %s", tt.in)
	}

	assert.Equal(t, NewRange(Pos(0, 5), Pos(2, 5)), ValidateRange(doc, NewRange(Pos(9, 9), Pos(0, 7))))
	assert.Equal(t, Position{}, ValidatePosition(Lines{}, Pos(3, 3)))
}

func TestIsValidAllowsOnePastLineEnd(t *testing.T) {
	doc := Lines{"abc"}
	assert.True(t, IsValid(doc, Pos(0, 4)))
	assert.False(t, IsValid(doc, Pos(0, 5)))
	assert.False(t, IsValid(doc, Pos(1, 0)))
}

func TestValidatePositionAlwaysValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[a-z é]{0,8}`), 1, 6).Draw(t, "lines")
		doc := Lines(lines)
		p := Pos(rapid.IntRange(-3, 10).Draw(t, "line"), rapid.IntRange(-3, 12).Draw(t, "char"))

		got := ValidatePosition(doc, p)
		if !IsValid(doc, got) || got.Character > LineLength(doc, got.Line) {
			t.Fatalf("ValidatePosition(%s) = %s is out of bounds", p, got)
		}
		if IsValid(doc, p) && p.Character <= LineLength(doc, p.Line) && got != p {
			t.Fatalf("ValidatePosition changed valid position %s to %s", p, got)
		}
	})
}
