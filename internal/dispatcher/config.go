package dispatcher

import (
	"github.com/dshills/motion/internal/engine/nav"
	"github.com/dshills/motion/internal/host"
	"github.com/dshills/motion/internal/motion"
)

// Config holds dispatcher configuration options.
type Config struct {
	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool

	// MaxRepeatCount limits movement counts. Zero means no limit.
	MaxRepeatCount int

	// WordSeparators is the punctuation set of the word class.
	WordSeparators string

	// SectionBoundary is the default line prefix for section movements.
	SectionBoundary string

	// ClipboardCommand is the host command copy runs.
	ClipboardCommand string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMetrics:    false,
		RecoverFromPanic: true,
		MaxRepeatCount:   motion.DefaultMaxCount,
		WordSeparators:   nav.DefaultWordSeparators,
		SectionBoundary:  motion.DefaultSectionBoundary,
		ClipboardCommand: host.CopyCommand,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithMaxRepeatCount returns a copy of the config with the max repeat count set.
func (c Config) WithMaxRepeatCount(max int) Config {
	c.MaxRepeatCount = max
	return c
}

// WithWordSeparators returns a copy of the config with the word separators set.
func (c Config) WithWordSeparators(seps string) Config {
	c.WordSeparators = seps
	return c
}

// WithSectionBoundary returns a copy of the config with the section boundary set.
func (c Config) WithSectionBoundary(boundary string) Config {
	c.SectionBoundary = boundary
	return c
}

// WithClipboardCommand returns a copy of the config with the copy command set.
func (c Config) WithClipboardCommand(name string) Config {
	c.ClipboardCommand = name
	return c
}

// Resolver builds the motion resolver described by c.
func (c Config) Resolver() (*motion.Resolver, error) {
	word, err := nav.NewWordClass(c.WordSeparators)
	if err != nil {
		return nil, err
	}
	opts := []motion.Option{
		motion.WithWordClass(word),
		motion.WithMaxCount(c.MaxRepeatCount),
	}
	if c.SectionBoundary != "" {
		opts = append(opts, motion.WithSectionBoundary(c.SectionBoundary))
	}
	return motion.NewResolver(opts...), nil
}
