package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/engine/text"
	"github.com/dshills/motion/internal/motion"
)

func TestParseRequestMove(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"move","movement":{"type":"word","modifier":"right","count":3}}`))
	require.NoError(t, err)

	assert.Equal(t, command.KindMove, req.Command)
	require.NotNil(t, req.Movement)
	assert.Equal(t, motion.KindWord, req.Movement.Kind)
	assert.Equal(t, motion.ModifierRight, req.Movement.Modifier)
	assert.Equal(t, 3, req.Movement.Count)
}

func TestParseRequestDefaultCount(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"select","movement":{"type":"letter","letter":"x"}}`))
	require.NoError(t, err)
	require.NotNil(t, req.Movement)
	assert.Equal(t, 1, req.Movement.Count)
	assert.Equal(t, "x", req.Movement.Letter)

	req, err = ParseRequest([]byte(`{"command":"move","movement":{"type":"word","count":0}}`))
	require.NoError(t, err)
	assert.Equal(t, 0, req.Movement.Count)
}

func TestParseRequestFlags(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"delete","movement":{"type":"find","modifier":"left","letter":"(","till":true,"count":2}}`))
	require.NoError(t, err)
	assert.Equal(t, motion.Find("(", false, true, 2), *req.Movement)

	req, err = ParseRequest([]byte(`{"command":"copy","movement":{"type":"word","inside":true}}`))
	require.NoError(t, err)
	assert.True(t, req.Movement.Inside)
}

func TestParseRequestCursor(t *testing.T) {
	data := `{"command":"cursor","cursors":[0,-1],
		"action":{"command":"move","movement":{"type":"direction","direction":"down"}}}`
	req, err := ParseRequest([]byte(data))
	require.NoError(t, err)

	want := command.Cursor([]int{0, -1}, command.Move(motion.Step(motion.DirectionDown)))
	assert.Equal(t, want, req)
	assert.NoError(t, req.Validate())
}

func TestParseRequestCommands(t *testing.T) {
	data := `{"command":"commands","commands":["editor.action.selectAll",
		{"command":"type","args":{"text":"hi","n":2}}]}`
	req, err := ParseRequest([]byte(data))
	require.NoError(t, err)

	require.Len(t, req.Commands, 2)
	assert.Equal(t, "editor.action.selectAll", req.Commands[0].Name)
	assert.Nil(t, req.Commands[0].Args)
	assert.Equal(t, "type", req.Commands[1].Name)
	assert.Equal(t, map[string]any{"text": "hi", "n": float64(2)}, req.Commands[1].Args)
}

func TestParseRequestNoMovement(t *testing.T) {
	req, err := ParseRequest([]byte(`{"command":"increment"}`))
	require.NoError(t, err)
	assert.Equal(t, command.Increment(), req)
}

func TestParseRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{"command":`, ErrInvalidJSON},
		{"not an object", `[1]`, ErrInvalidField},
		{"missing command", `{}`, ErrInvalidField},
		{"command not a string", `{"command":1}`, ErrInvalidField},
		{"unknown command", `{"command":"jump"}`, command.ErrUnknownCommand},
		{"unknown movement", `{"command":"move","movement":{"type":"teleport"}}`, motion.ErrUnknownMovement},
		{"bad modifier", `{"command":"move","movement":{"type":"line","modifier":"left"}}`, motion.ErrUnknownMovement},
		{"bad direction", `{"command":"move","movement":{"type":"direction","direction":"in"}}`, motion.ErrUnknownDirection},
		{"count not a number", `{"command":"move","movement":{"type":"word","count":"2"}}`, ErrInvalidField},
		{"cursors not an array", `{"command":"cursor","cursors":1}`, ErrInvalidField},
		{"cursor index not a number", `{"command":"cursor","cursors":["a"]}`, ErrInvalidField},
		{"bad nested action", `{"command":"cursor","cursors":[0],"action":{"command":"nope"}}`, command.ErrUnknownCommand},
		{"commands not an array", `{"command":"commands","commands":{}}`, ErrInvalidField},
		{"args not an object", `{"command":"commands","commands":[{"command":"a","args":[]}]}`, ErrInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseRequestErrorPath(t *testing.T) {
	_, err := ParseRequest([]byte(`{"command":"cursor","action":{"command":"move","movement":{"type":"word","count":true}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action.movement.count")
}

func TestParseRequests(t *testing.T) {
	reqs, err := ParseRequests([]byte(`[{"command":"increment"},{"command":"decrement"}]`))
	require.NoError(t, err)
	assert.Equal(t, []command.Request{command.Increment(), command.Decrement()}, reqs)

	reqs, err = ParseRequests([]byte(`{"command":"increment"}`))
	require.NoError(t, err)
	assert.Len(t, reqs, 1)

	_, err = ParseRequests([]byte(`[{"command":"increment"},{"command":"x"}]`))
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestParseMovement(t *testing.T) {
	m, err := ParseMovement([]byte(`{"type":"paragraph","modifier":"down","count":2}`))
	require.NoError(t, err)
	assert.Equal(t, motion.Movement{Kind: motion.KindParagraph, Modifier: motion.ModifierDown, Count: 2}, m)

	_, err = ParseMovement([]byte(`"word"`))
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestEncodeSelections(t *testing.T) {
	out, err := EncodeSelections([]text.Selection{
		text.NewSelection(text.Pos(0, 1), text.Pos(2, 3)),
		text.NewCursor(text.Pos(4, 0)),
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"selections":[
		{"anchor":{"line":0,"character":1},"active":{"line":2,"character":3}},
		{"anchor":{"line":4,"character":0},"active":{"line":4,"character":0}}]}`, string(out))

	out, err = EncodeSelections(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"selections":null}`, string(out))

	out, err = EncodeSelections([]text.Selection{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"selections":[]}`, string(out))
}

func TestEncodeResult(t *testing.T) {
	res := handler.Success([]text.Selection{text.NewCursor(text.Pos(1, 2))}).
		WithCommand(command.KindMove).
		WithRequestID("req-1")

	out, err := EncodeResult(res)
	require.NoError(t, err)
	assert.Equal(t, "ok", gjson.GetBytes(out, "status").String())
	assert.Equal(t, "move", gjson.GetBytes(out, "command").String())
	assert.Equal(t, "req-1", gjson.GetBytes(out, "request_id").String())
	assert.False(t, gjson.GetBytes(out, "error").Exists())
	assert.Equal(t, int64(2), gjson.GetBytes(out, "selections.0.active.character").Int())

	sels, err := ParseSelections(out)
	require.NoError(t, err)
	assert.Equal(t, res.Selections, sels)
}

func TestEncodeResultError(t *testing.T) {
	out, err := EncodeResult(handler.Error(errors.New("boom")))
	require.NoError(t, err)
	assert.Equal(t, "error", gjson.GetBytes(out, "status").String())
	assert.Equal(t, "boom", gjson.GetBytes(out, "error").String())
	assert.Equal(t, gjson.Null, gjson.GetBytes(out, "selections").Type)

	sels, err := ParseSelections(out)
	require.NoError(t, err)
	assert.Nil(t, sels)
}

func TestSchema(t *testing.T) {
	out, err := Schema()
	require.NoError(t, err)
	require.True(t, gjson.ValidBytes(out))

	assert.Equal(t, "motion request", gjson.GetBytes(out, "title").String())
	assert.Contains(t, string(out), `"movement"`)
	assert.Contains(t, string(out), `"cursors"`)
	assert.Contains(t, string(out), `"bigWord"`)
}
