package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader builds a Config from defaults, a file and the environment.
type Loader struct {
	path   string
	env    *EnvLoader
	readFn func(string) ([]byte, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnv replaces the environment loader. A nil loader disables overrides.
func WithEnv(env *EnvLoader) LoaderOption {
	return func(l *Loader) {
		l.env = env
	}
}

// WithReadFile replaces the function used to read the config file.
func WithReadFile(fn func(string) ([]byte, error)) LoaderOption {
	return func(l *Loader) {
		if fn != nil {
			l.readFn = fn
		}
	}
}

// NewLoader creates a loader for the file at path. An empty path skips the
// file layer.
func NewLoader(path string, opts ...LoaderOption) *Loader {
	l := &Loader{
		path:   path,
		env:    NewEnvLoader(EnvPrefix, os.LookupEnv),
		readFn: os.ReadFile,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Path returns the config file path.
func (l *Loader) Path() string {
	return l.path
}

// Load reads the layers and validates the result. A missing file is not an
// error.
func (l *Loader) Load() (Config, error) {
	cfg := Default()

	if l.path != "" {
		data, err := l.readFn(l.path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", l.path, err)
		default:
			if err := decode(l.path, data, &cfg); err != nil {
				return Config{}, err
			}
		}
	}

	if l.env != nil {
		if err := l.env.Apply(&cfg); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config file at path with environment overrides.
func Load(path string) (Config, error) {
	return NewLoader(path).Load()
}

// Parse decodes TOML data over the defaults without environment overrides.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode("<data>", data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// decode unmarshals data into cfg. Keys absent from data keep the values
// already in cfg; unknown keys are rejected.
func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			perr.Message = serr.String()
		}
		return perr
	}
	return nil
}
