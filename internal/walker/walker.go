package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/harrison/fsnamer/internal/ignore"
	"github.com/harrison/fsnamer/internal/models"
)

// ErrNotDirectory is wrapped in the IOError returned for a non-directory root.
var ErrNotDirectory = errors.New("not a directory")

// Options configures a walk. It is not modified by the walker.
type Options struct {
	// Root is the directory to walk. It is never yielded.
	Root string
	// MaxDepth limits recursion (0 = unlimited, 1 = root's children only)
	MaxDepth int
	// RequireRepository fails the walk when Root is not inside a repository.
	RequireRepository bool
	// Ignore are per-invocation ignore sources, lowest precedence first.
	Ignore []ignore.Source
	// Global is the user-level ignore source (may be nil).
	Global ignore.Source
	// IncludeHidden visits entries whose name starts with a dot.
	IncludeHidden bool
	// Logger receives ignore-file warnings (may be nil).
	Logger ignore.Logger
}

// Entry is one visited filesystem entry.
type Entry struct {
	// Path is Root joined with Rel.
	Path string
	// Rel is the path relative to Root.
	Rel string
	// Depth is 1 for the root's children.
	Depth int
	// Mode holds the type bits of the entry (not followed through symlinks).
	Mode fs.FileMode
}

// Name returns the final path segment.
func (e Entry) Name() string { return filepath.Base(e.Path) }

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool { return e.Mode.IsDir() }

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool { return e.Mode.IsRegular() }

// Walker is a prepared walk: the root has been validated, the repository
// boundary resolved and the per-invocation ignore rules loaded.
type Walker struct {
	opts     Options
	absRoot  string
	repo     string
	resolver *ignore.Resolver
}

// New validates opts and prepares a walk.
func New(opts Options) (*Walker, error) {
	if opts.MaxDepth < 0 {
		return nil, fmt.Errorf("max depth must be >= 0, got %d", opts.MaxDepth)
	}

	info, err := os.Stat(opts.Root)
	if err != nil {
		return nil, &models.IOError{Op: "stat", Path: opts.Root, Err: err}
	}
	if !info.IsDir() {
		return nil, &models.IOError{Op: "read", Path: opts.Root, Err: ErrNotDirectory}
	}

	absRoot, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, &models.IOError{Op: "stat", Path: opts.Root, Err: err}
	}

	repo, err := ignore.FindRepository(absRoot)
	if err != nil {
		if opts.RequireRepository || !models.IsNoRepository(err) {
			return nil, err
		}
	}

	resolver, err := ignore.NewResolver(ignore.Config{
		Root:          absRoot,
		Repository:    repo,
		Explicit:      opts.Ignore,
		Global:        opts.Global,
		IncludeHidden: opts.IncludeHidden,
		Logger:        opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	return &Walker{
		opts:     opts,
		absRoot:  absRoot,
		repo:     repo,
		resolver: resolver,
	}, nil
}

// Repository returns the repository root containing the walk root, or "" if
// there is none.
func (w *Walker) Repository() string {
	return w.repo
}

// Entries returns the lazy sequence of entries. Each call starts a new
// traversal.
func (w *Walker) Entries() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		w.visit(w.opts.Root, w.absRoot, "", 1, yield)
	}
}

// Walk prepares and runs a walk in one step. Preparation errors are yielded
// as the only element.
func Walk(opts Options) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		w, err := New(opts)
		if err != nil {
			yield(Entry{}, err)
			return
		}
		for entry, err := range w.Entries() {
			if !yield(entry, err) {
				return
			}
		}
	}
}

// visit yields the contents of dir. It returns false once the walk must stop,
// either because the consumer stopped or a directory could not be read.
func (w *Walker) visit(dir, absDir, rel string, depth int, yield func(Entry, error) bool) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		yield(Entry{}, &models.IOError{Op: "read", Path: dir, Err: err})
		return false
	}

	for _, de := range entries {
		name := de.Name()
		abs := filepath.Join(absDir, name)
		if abs == w.absRoot {
			continue
		}

		isDir := de.IsDir()
		if !w.resolver.ShouldVisit(abs, isDir) {
			continue
		}

		entry := Entry{
			Path:  filepath.Join(dir, name),
			Rel:   filepath.Join(rel, name),
			Depth: depth,
			Mode:  de.Type(),
		}

		if isDir && (w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth) {
			if !w.visit(entry.Path, abs, entry.Rel, depth+1, yield) {
				return false
			}
		}

		if !yield(entry, nil) {
			return false
		}
	}

	return true
}
