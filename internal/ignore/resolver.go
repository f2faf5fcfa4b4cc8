package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Logger receives non-fatal problems found while loading rules.
type Logger interface {
	LogWarn(message string)
}

// Config configures a Resolver.
type Config struct {
	// Root is the walk root. Per-invocation and global rules are relative to it.
	Root string
	// Repository is the repository root, or "" to disable version-control
	// ignore files.
	Repository string
	// Explicit are per-invocation sources; a failure to load one is an error.
	Explicit []Source
	// Global is the user-level ignore source; load failures only warn.
	Global        Source
	IncludeHidden bool
	Logger        Logger
}

// Resolver decides per entry whether a walk visits it. It is not safe for
// concurrent use; .gitignore files are loaded lazily and cached.
type Resolver struct {
	root          string
	repo          string
	explicit      []*Ruleset
	global        *Ruleset
	exclude       *Ruleset
	gitignores    map[string]*Ruleset
	includeHidden bool
	logger        Logger
}

// NewResolver loads the per-invocation, global and repository-wide sources.
func NewResolver(cfg Config) (*Resolver, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", cfg.Root, err)
	}

	r := &Resolver{
		root:          root,
		gitignores:    make(map[string]*Ruleset),
		includeHidden: cfg.IncludeHidden,
		logger:        cfg.Logger,
	}

	for _, src := range cfg.Explicit {
		rs, err := src.Load(root)
		if err != nil {
			return nil, err
		}
		if rs != nil {
			r.warnAll(rs)
			r.explicit = append(r.explicit, rs)
		}
	}

	if cfg.Global != nil {
		rs, err := cfg.Global.Load(root)
		if err != nil {
			r.warn(fmt.Sprintf("Error parsing global ignore file: %v", err))
		} else if rs != nil {
			r.warnAll(rs)
			r.global = rs
		}
	}

	if cfg.Repository != "" {
		repo, err := filepath.Abs(cfg.Repository)
		if err != nil {
			return nil, fmt.Errorf("resolve repository %s: %w", cfg.Repository, err)
		}
		r.repo = repo
		r.exclude = r.loadOptional(filepath.Join(repo, MetadataDir, "info", "exclude"), repo)
	}

	return r, nil
}

// ShouldVisit reports whether the entry at path is visited. Only the entry
// itself is judged; callers that walk a tree prune excluded directories so
// their contents are never asked about.
func (r *Resolver) ShouldVisit(path string, isDir bool) bool {
	return r.Decide(path, isDir) != Exclude
}

// Decide returns the first non-None decision in precedence order, then
// applies the hidden-entry default.
func (r *Resolver) Decide(path string, isDir bool) Decision {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	name := filepath.Base(abs)
	if name == MetadataDir {
		return Exclude
	}

	if d := r.decideRules(abs, isDir); d != None {
		return d
	}

	if !r.includeHidden && strings.HasPrefix(name, ".") {
		return Exclude
	}
	return None
}

func (r *Resolver) decideRules(abs string, isDir bool) Decision {
	for i := len(r.explicit) - 1; i >= 0; i-- {
		if d := r.explicit[i].MatchPath(abs, isDir); d != None {
			return d
		}
	}

	if d := r.global.MatchPath(abs, isDir); d != None {
		return d
	}

	if r.repo == "" || !within(r.repo, abs) {
		return None
	}

	for dir := filepath.Dir(abs); within(r.repo, dir); dir = filepath.Dir(dir) {
		if d := r.gitignore(dir).MatchPath(abs, isDir); d != None {
			return d
		}
		if dir == r.repo {
			break
		}
	}

	return r.exclude.MatchPath(abs, isDir)
}

// gitignore returns the cached .gitignore ruleset of dir (nil if none).
func (r *Resolver) gitignore(dir string) *Ruleset {
	if rs, ok := r.gitignores[dir]; ok {
		return rs
	}
	rs := r.loadOptional(filepath.Join(dir, ".gitignore"), dir)
	r.gitignores[dir] = rs
	return rs
}

func (r *Resolver) loadOptional(path, base string) *Ruleset {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.warn(fmt.Sprintf("cannot read %s: %v", path, err))
		}
		return nil
	}
	rs := ParseRules(base, path, data)
	r.warnAll(rs)
	return rs
}

func (r *Resolver) warnAll(rs *Ruleset) {
	for _, w := range rs.Warnings {
		r.warn(w.Error())
	}
}

func (r *Resolver) warn(msg string) {
	if r.logger != nil {
		r.logger.LogWarn(msg)
	}
}

// within reports whether path is dir or below it.
func within(dir, path string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
