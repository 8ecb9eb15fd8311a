package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		ok     bool
		value  int64
		base   int
		digits int
	}{
		{"54", true, 54, 10, 2},
		{"-7", true, -7, 10, 1},
		{"+7", true, 7, 10, 1},
		{"0", true, 0, 10, 1},
		{"08", true, 8, 10, 2},
		{"017", true, 15, 8, 2},
		{"0x1f", true, 31, 16, 2},
		{"-0XFF", true, -255, 16, 2},
		{"1a", false, 0, 0, 0},
		{"23.5", false, 0, 0, 0},
		{"", false, 0, 0, 0},
		{"-", false, 0, 0, 0},
		{"hey", false, 0, 0, 0},
		{"99999999999999999999", false, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, ok := Parse(tt.in)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.value, n.Value)
			assert.Equal(t, tt.base, n.Base)
			assert.Equal(t, tt.digits, n.Digits)
		})
	}
}

func TestAddString(t *testing.T) {
	tests := []struct {
		in    string
		delta int64
		want  string
	}{
		{"54", 1, "55"},
		{"9", 1, "10"},
		{"0", -1, "-1"},
		{"-1", 1, "0"},
		{"+5", 1, "6"},
		{"007", 1, "010"},
		{"0x0f", 1, "0x10"},
		{"0xFF", 1, "0x100"},
		{"0x0A", -1, "0x09"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, ok := Parse(tt.in)
			require.True(t, ok)
			got, ok := n.Add(tt.delta)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAddOverflow(t *testing.T) {
	tests := []struct {
		in    string
		delta int64
	}{
		{"9223372036854775807", 1},
		{"0x7fffffffffffffff", 1},
		{"-9223372036854775807", -2},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n, ok := Parse(tt.in)
			require.True(t, ok)
			got, ok := n.Add(tt.delta)
			assert.False(t, ok)
			assert.Equal(t, n, got)
		})
	}
}

func TestMinInt64Formatting(t *testing.T) {
	n, ok := Parse("-0x7fffffffffffffff")
	require.True(t, ok)

	got, ok := n.Add(-1)
	require.True(t, ok)
	assert.Equal(t, "-0x8000000000000000", got.String())
}

func TestDecimalRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, "v")
		n := Number{Value: v, Base: 10}

		got, ok := Parse(n.String())
		if !ok || got.Value != v {
			t.Fatalf("Parse(%q) = %v, %v", n.String(), got, ok)
		}
	})
}
