package config

import (
	"errors"
	"fmt"
)

// Error kinds, to be tested with errors.Is.
var (
	ErrMissingSection = errors.New("arshape/config: section missing")
	ErrFileNotFound   = errors.New("arshape/config: configuration file not found")
	ErrUnknownKey     = errors.New("arshape/config: unknown key")
	ErrInvalidValue   = errors.New("arshape/config: invalid value")
	ErrMissingKey     = errors.New("arshape/config: option not set")
)

// ConfigError describes a configuration problem. Kind is one of the Err…
// values of this package.
type ConfigError struct {
	Kind   error
	Source string // name of the configuration layer, e.g. a file path
	Key    string // offending key, if any
	Issue  string // human-readable details
}

func (e *ConfigError) Error() string {
	msg := e.Kind.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Key)
	}
	if e.Source != "" {
		msg = fmt.Sprintf("%s in %s", msg, e.Source)
	}
	if e.Issue != "" {
		msg = msg + ": " + e.Issue
	}
	return msg
}

// Unwrap returns the error kind.
func (e *ConfigError) Unwrap() error {
	return e.Kind
}

func configError(kind error, source, key, issue string) *ConfigError {
	return &ConfigError{Kind: kind, Source: source, Key: key, Issue: issue}
}
