package config

import (
	"fmt"
	"strings"

	"github.com/dshills/motion/internal/dispatcher"
	"github.com/dshills/motion/internal/logging"
)

// Config is the full settings tree.
type Config struct {
	Motion     MotionConfig     `toml:"motion"`
	Dispatcher DispatcherConfig `toml:"dispatcher"`
	Logging    LoggingConfig    `toml:"logging"`
}

// MotionConfig configures movement resolution.
type MotionConfig struct {
	// WordSeparators is the punctuation that splits words.
	WordSeparators string `toml:"word_separators"`
	// SectionBoundary is the line prefix that starts a section.
	SectionBoundary string `toml:"section_boundary"`
	// MaxRepeatCount caps movement counts. Zero disables the cap.
	MaxRepeatCount int `toml:"max_repeat_count"`
}

// DispatcherConfig configures command execution.
type DispatcherConfig struct {
	RecoverFromPanic bool   `toml:"recover_from_panic"`
	EnableMetrics    bool   `toml:"enable_metrics"`
	ClipboardCommand string `toml:"clipboard_command"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	d := dispatcher.DefaultConfig()
	return Config{
		Motion: MotionConfig{
			WordSeparators:  d.WordSeparators,
			SectionBoundary: d.SectionBoundary,
			MaxRepeatCount:  d.MaxRepeatCount,
		},
		Dispatcher: DispatcherConfig{
			RecoverFromPanic: d.RecoverFromPanic,
			EnableMetrics:    d.EnableMetrics,
			ClipboardCommand: d.ClipboardCommand,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate reports settings the dispatcher cannot use.
func (c Config) Validate() error {
	if c.Motion.MaxRepeatCount < 0 {
		return fmt.Errorf("%w: motion.max_repeat_count %d", ErrInvalidValue, c.Motion.MaxRepeatCount)
	}
	if strings.TrimSpace(c.Dispatcher.ClipboardCommand) == "" {
		return fmt.Errorf("%w: dispatcher.clipboard_command is empty", ErrInvalidValue)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}
	if _, err := c.DispatcherConfig().Resolver(); err != nil {
		return fmt.Errorf("%w: motion.word_separators: %v", ErrInvalidValue, err)
	}
	return nil
}

// DispatcherConfig converts c to the dispatcher's configuration.
func (c Config) DispatcherConfig() dispatcher.Config {
	return dispatcher.Config{
		EnableMetrics:    c.Dispatcher.EnableMetrics,
		RecoverFromPanic: c.Dispatcher.RecoverFromPanic,
		MaxRepeatCount:   c.Motion.MaxRepeatCount,
		WordSeparators:   c.Motion.WordSeparators,
		SectionBoundary:  c.Motion.SectionBoundary,
		ClipboardCommand: c.Dispatcher.ClipboardCommand,
	}
}

// LogLevel returns the configured logging level.
func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
