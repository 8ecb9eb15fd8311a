package protocol

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/motion/internal/dispatcher/handler"
	"github.com/dshills/motion/internal/engine/text"
)

// EncodeSelections renders selections as {"selections":[...]}. A nil slice
// encodes as null, which is what the commands passthrough returns.
func EncodeSelections(sels []text.Selection) ([]byte, error) {
	return setSelections([]byte(`{}`), sels)
}

// EncodeResult renders a dispatcher result.
func EncodeResult(res handler.Result) ([]byte, error) {
	out, err := setSelections([]byte(`{}`), res.Selections)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		path  string
		value any
		skip  bool
	}{
		{"status", res.Status.String(), false},
		{"command", string(res.Command), res.Command == ""},
		{"request_id", res.RequestID, res.RequestID == ""},
		{"message", res.Message, res.Message == ""},
		{"edits", len(res.Edits), len(res.Edits) == 0},
		{"error", errString(res.Error), res.Error == nil},
	}
	for _, f := range fields {
		if f.skip {
			continue
		}
		if out, err = sjson.SetBytes(out, f.path, f.value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.path, err)
		}
	}
	return out, nil
}

// ParseSelections decodes the "selections" member of an encoded result.
func ParseSelections(data []byte) ([]text.Selection, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	v := gjson.GetBytes(data, "selections")
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, fieldError("selections", "array")
	}

	arr := v.Array()
	sels := make([]text.Selection, 0, len(arr))
	for _, s := range arr {
		sels = append(sels, text.Selection{
			Anchor: parsePosition(s.Get("anchor")),
			Active: parsePosition(s.Get("active")),
		})
	}
	return sels, nil
}

func setSelections(out []byte, sels []text.Selection) ([]byte, error) {
	if sels == nil {
		return sjson.SetRawBytes(out, "selections", []byte("null"))
	}

	out, err := sjson.SetRawBytes(out, "selections", []byte("[]"))
	if err != nil {
		return nil, err
	}
	for i, s := range sels {
		for _, p := range []struct {
			name string
			pos  text.Position
		}{{"anchor", s.Anchor}, {"active", s.Active}} {
			base := fmt.Sprintf("selections.%d.%s", i, p.name)
			if out, err = sjson.SetBytes(out, base+".line", p.pos.Line); err != nil {
				return nil, err
			}
			if out, err = sjson.SetBytes(out, base+".character", p.pos.Character); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func parsePosition(v gjson.Result) text.Position {
	return text.Position{
		Line:      int(v.Get("line").Int()),
		Character: int(v.Get("character").Int()),
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
