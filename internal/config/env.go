package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "MOTION_"

// EnvLoader applies environment variables to a Config.
type EnvLoader struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvLoader creates an env loader. lookup is usually os.LookupEnv.
func NewEnvLoader(prefix string, lookup func(string) (string, bool)) *EnvLoader {
	return &EnvLoader{prefix: prefix, lookup: lookup}
}

type envSetter func(cfg *Config, value string) error

// envMapping maps variable suffixes to setters.
var envMapping = map[string]envSetter{
	"WORD_SEPARATORS": func(cfg *Config, v string) error {
		cfg.Motion.WordSeparators = v
		return nil
	},
	"SECTION_BOUNDARY": func(cfg *Config, v string) error {
		cfg.Motion.SectionBoundary = v
		return nil
	},
	"MAX_REPEAT_COUNT": func(cfg *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		cfg.Motion.MaxRepeatCount = n
		return nil
	},
	"RECOVER_FROM_PANIC": func(cfg *Config, v string) error {
		b, err := parseBool(v)
		cfg.Dispatcher.RecoverFromPanic = b
		return err
	},
	"ENABLE_METRICS": func(cfg *Config, v string) error {
		b, err := parseBool(v)
		cfg.Dispatcher.EnableMetrics = b
		return err
	},
	"CLIPBOARD_COMMAND": func(cfg *Config, v string) error {
		cfg.Dispatcher.ClipboardCommand = v
		return nil
	},
	"LOG_LEVEL": func(cfg *Config, v string) error {
		cfg.Logging.Level = v
		return nil
	},
}

// Variables returns the names of the recognized variables.
func (l *EnvLoader) Variables() []string {
	names := make([]string, 0, len(envMapping))
	for suffix := range envMapping {
		names = append(names, l.prefix+suffix)
	}
	sort.Strings(names)
	return names
}

// Apply sets every variable that is present, empty values included.
func (l *EnvLoader) Apply(cfg *Config) error {
	if l == nil || l.lookup == nil {
		return nil
	}
	for _, name := range l.Variables() {
		v, ok := l.lookup(name)
		if !ok {
			continue
		}
		set := envMapping[strings.TrimPrefix(name, l.prefix)]
		if err := set(cfg, v); err != nil {
			return &ParseError{
				Path:    name,
				Message: fmt.Sprintf("invalid value %q", v),
				Err:     err,
			}
		}
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("%w: not a boolean", ErrInvalidValue)
}
