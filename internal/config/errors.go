package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue indicates a setting outside its allowed range.
	ErrInvalidValue = errors.New("config: invalid value")
	// ErrWatcherClosed indicates use of a stopped watcher.
	ErrWatcherClosed = errors.New("config: watcher closed")
)

// ParseError reports a malformed config file or environment value.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
