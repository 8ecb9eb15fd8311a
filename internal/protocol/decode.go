package protocol

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/motion"
)

// ParseRequest decodes one request.
func ParseRequest(data []byte) (command.Request, error) {
	if !gjson.ValidBytes(data) {
		return command.Request{}, ErrInvalidJSON
	}
	return parseRequest(gjson.ParseBytes(data), "")
}

// ParseRequests decodes a single request or an array of requests.
func ParseRequests(data []byte) ([]command.Request, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		r, err := parseRequest(root, "")
		if err != nil {
			return nil, err
		}
		return []command.Request{r}, nil
	}

	var (
		out []command.Request
		err error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		var r command.Request
		r, err = parseRequest(value, fmt.Sprintf("[%d]", key.Int()))
		if err != nil {
			return false
		}
		out = append(out, r)
		return true
	})
	return out, err
}

// ParseMovement decodes a movement object.
func ParseMovement(data []byte) (motion.Movement, error) {
	if !gjson.ValidBytes(data) {
		return motion.Movement{}, ErrInvalidJSON
	}
	return parseMovement(gjson.ParseBytes(data), "movement")
}

func parseRequest(v gjson.Result, path string) (command.Request, error) {
	if !v.IsObject() {
		return command.Request{}, fieldError(path, "object")
	}

	name := v.Get("command")
	if name.Type != gjson.String {
		return command.Request{}, fieldError(join(path, "command"), "string")
	}
	kind, err := command.ParseKind(name.String())
	if err != nil {
		return command.Request{}, err
	}
	req := command.Request{Command: kind}

	if m := v.Get("movement"); m.Exists() {
		mv, err := parseMovement(m, join(path, "movement"))
		if err != nil {
			return command.Request{}, err
		}
		req.Movement = &mv
	}

	if c := v.Get("cursors"); c.Exists() {
		if !c.IsArray() {
			return command.Request{}, fieldError(join(path, "cursors"), "array")
		}
		for i, idx := range c.Array() {
			if idx.Type != gjson.Number {
				return command.Request{}, fieldError(fmt.Sprintf("%s[%d]", join(path, "cursors"), i), "number")
			}
			req.Cursors = append(req.Cursors, int(idx.Int()))
		}
	}

	if a := v.Get("action"); a.Exists() {
		action, err := parseRequest(a, join(path, "action"))
		if err != nil {
			return command.Request{}, err
		}
		req.Action = &action
	}

	if cs := v.Get("commands"); cs.Exists() {
		if !cs.IsArray() {
			return command.Request{}, fieldError(join(path, "commands"), "array")
		}
		for i, c := range cs.Array() {
			hc, err := parseHostCommand(c, fmt.Sprintf("%s[%d]", join(path, "commands"), i))
			if err != nil {
				return command.Request{}, err
			}
			req.Commands = append(req.Commands, hc)
		}
	}

	return req, nil
}

func parseHostCommand(v gjson.Result, path string) (command.HostCommand, error) {
	// A bare string is shorthand for a command without args.
	if v.Type == gjson.String {
		return command.HostCommand{Name: v.String()}, nil
	}
	if !v.IsObject() {
		return command.HostCommand{}, fieldError(path, "object or string")
	}

	hc := command.HostCommand{Name: v.Get("command").String()}
	if args := v.Get("args"); args.Exists() {
		if !args.IsObject() {
			return command.HostCommand{}, fieldError(join(path, "args"), "object")
		}
		hc.Args, _ = args.Value().(map[string]any)
	}
	return hc, nil
}

func parseMovement(v gjson.Result, path string) (motion.Movement, error) {
	if !v.IsObject() {
		return motion.Movement{}, fieldError(path, "object")
	}

	m := motion.Movement{
		Kind:       motion.Kind(v.Get("type").String()),
		Modifier:   motion.Modifier(v.Get("modifier").String()),
		Direction:  motion.Direction(v.Get("direction").String()),
		Letter:     v.Get("letter").String(),
		Inside:     v.Get("inside").Bool(),
		Till:       v.Get("till").Bool(),
		WillRepeat: v.Get("willRepeat").Bool(),
		Boundary:   v.Get("boundary").String(),
		Count:      1,
	}

	if c := v.Get("count"); c.Exists() && c.Type != gjson.Null {
		if c.Type != gjson.Number {
			return motion.Movement{}, fieldError(join(path, "count"), "number")
		}
		m.Count = int(c.Int())
	}

	if err := m.Validate(); err != nil {
		return motion.Movement{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func fieldError(path, want string) error {
	if path == "" {
		path = "request"
	}
	return fmt.Errorf("%w: %s must be %s", ErrInvalidField, path, want)
}
