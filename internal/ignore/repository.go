package ignore

import (
	"os"
	"path/filepath"

	"github.com/harrison/fsnamer/internal/models"
)

// MetadataDir is the version-control metadata entry that marks a repository.
const MetadataDir = ".git"

// FindRepository returns the closest ancestor of path (path included) that
// holds a .git entry. Both directories and the ".git" files used by worktrees
// and submodules count.
func FindRepository(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &models.IOError{Op: "stat", Path: path, Err: err}
	}

	current := abs
	for {
		if _, err := os.Lstat(filepath.Join(current, MetadataDir)); err == nil {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", &models.NoRepositoryError{Root: path}
}
