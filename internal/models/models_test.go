package models

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckGroupMaxDepth(t *testing.T) {
	assert.Equal(t, 0, CheckGroup{Recursive: true}.MaxDepth())
	assert.Equal(t, 1, CheckGroup{Recursive: false}.MaxDepth())
}

func TestFixResultFailed(t *testing.T) {
	r := &FixResult{Renamed: 3}
	assert.False(t, r.Failed())

	r.Errors = append(r.Errors, errors.New("boom"))
	assert.True(t, r.Failed())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid unicode", &EncodingError{Name: "a\xffb"}, `"a\xffb" is not valid Unicode`},
		{"nothing left", &EncodingError{Name: "日本", Reason: "no ASCII-representable characters left"}, `"日本": no ASCII-representable characters left`},
		{"io", &IOError{Op: "read", Path: "docs", Err: fs.ErrPermission}, "read docs: permission denied"},
		{"no repository", &NoRepositoryError{Root: "/tmp/x"}, "/tmp/x is not inside a git repository (use --no-require-git to override)"},
		{"config with source", &ConfigError{Source: "fsnamer.toml", Err: errors.New("no paths defined")}, "configuration error in fsnamer.toml: no paths defined"},
		{"config without source", &ConfigError{Err: errors.New("bad")}, "configuration error: bad"},
		{"mismatch", &PatternMismatchError{Group: "docs", Path: "docs/B.md", Pattern: "^[a-z]"}, "group docs: file docs/B.md does not match pattern ^[a-z]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	ioErr := fmt.Errorf("walk: %w", &IOError{Op: "read", Path: "x", Err: fs.ErrNotExist})
	assert.ErrorIs(t, ioErr, fs.ErrNotExist)

	cfgErr := &ConfigError{Source: "g", Err: fs.ErrNotExist}
	assert.ErrorIs(t, cfgErr, fs.ErrNotExist)

	assert.True(t, IsNoRepository(fmt.Errorf("wrapped: %w", &NoRepositoryError{Root: "r"})))
	assert.False(t, IsNoRepository(errors.New("other")))
	assert.True(t, IsPatternMismatch(errors.Join(errors.New("x"), &PatternMismatchError{})))
	assert.False(t, IsPatternMismatch(cfgErr))
}
