package script

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/protocol"
)

// Script is a named sequence of requests.
type Script struct {
	Name string
	// Text, when set, is the initial document for hosts created from the
	// script. It may carry '|' cursor marks.
	Text  string
	Steps []command.Request
}

type rawScript struct {
	Name  string           `yaml:"name"`
	Text  string           `yaml:"text"`
	Steps []map[string]any `yaml:"steps"`
}

// ParseYAML decodes a YAML script. Steps are decoded by the JSON protocol so
// both forms accept exactly the same requests.
func ParseYAML(data []byte) (*Script, error) {
	var raw rawScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if len(raw.Steps) == 0 {
		return nil, ErrNoSteps
	}

	s := &Script{Name: raw.Name, Text: raw.Text}
	for i, step := range raw.Steps {
		data, err := json.Marshal(step)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		req, err := protocol.ParseRequest(data)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		s.Steps = append(s.Steps, req)
	}
	return s, nil
}

// LoadYAML reads and decodes the YAML script at path.
func LoadYAML(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	s, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
