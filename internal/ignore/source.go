package ignore

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/harrison/fsnamer/internal/models"
)

// Source supplies a Ruleset. base is the absolute directory the rules are
// matched against (the walk root for per-invocation and global sources).
type Source interface {
	Load(base string) (*Ruleset, error)
}

// File is an ignore file that must exist.
type File string

// Load reads and compiles the file.
func (f File) Load(base string) (*Ruleset, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, &models.IOError{Op: "read", Path: string(f), Err: err}
	}
	return ParseRules(base, string(f), data), nil
}

// OptionalFile is an ignore file that may be absent, such as the user-level
// global ignore file. A missing file yields no rules.
type OptionalFile string

// Load reads the file if present.
func (f OptionalFile) Load(base string) (*Ruleset, error) {
	if f == "" {
		return nil, nil
	}
	rs, err := File(f).Load(base)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return rs, err
}

// Patterns is a list of inline rules.
type Patterns []string

// Load compiles the patterns.
func (p Patterns) Load(base string) (*Ruleset, error) {
	if len(p) == 0 {
		return nil, nil
	}
	return ParseRules(base, "inline patterns", []byte(strings.Join(p, "\n"))), nil
}
