package models

import (
	"errors"
	"fmt"
)

// EncodingError reports a filename that cannot be turned into a canonical name,
// either because it is not valid UTF-8 or because nothing ASCII-representable
// is left once it has been folded.
type EncodingError struct {
	Name   string
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%q is not valid Unicode", e.Name)
	}
	return fmt.Sprintf("%q: %s", e.Name, e.Reason)
}

// ErrTargetExists is wrapped in the IOError recorded for a rename collision.
var ErrTargetExists = errors.New("target already exists")

// IOError is a filesystem read or rename failure tied to a path.
type IOError struct {
	Op   string // "read", "stat", "rename", "lock"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// NoRepositoryError is returned when a walk root is not inside a
// version-controlled directory and the walk requires one.
type NoRepositoryError struct {
	Root string
}

func (e *NoRepositoryError) Error() string {
	return fmt.Sprintf("%s is not inside a git repository (use --no-require-git to override)", e.Root)
}

// ConfigError reports a malformed configuration document, an invalid pattern,
// or a group that references something unusable.
type ConfigError struct {
	Source string // config file path or group name
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// PatternMismatchError is a check-mode violation.
type PatternMismatchError struct {
	Group   string
	Path    string
	Pattern string
}

func (e *PatternMismatchError) Error() string {
	return fmt.Sprintf("group %s: file %s does not match pattern %s", e.Group, e.Path, e.Pattern)
}

// IsNoRepository reports whether err is, or wraps, a NoRepositoryError.
func IsNoRepository(err error) bool {
	var target *NoRepositoryError
	return errors.As(err, &target)
}

// IsPatternMismatch reports whether err is, or wraps, a PatternMismatchError.
func IsPatternMismatch(err error) bool {
	var target *PatternMismatchError
	return errors.As(err, &target)
}
