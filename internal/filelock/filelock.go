// Package filelock serializes fix runs that target the same repository.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file name inside the repository metadata directory.
const LockName = "fsnamer.lock"

// ErrLocked is returned by Acquire when another process holds the lock.
var ErrLocked = errors.New("another fsnamer run holds the repository lock")

// FileLock wraps a flock file lock for coordinating access to a repository.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// ForRepository returns the lock for a repository root. The lock lives in the
// .git directory; for worktrees, where .git is a file, it sits next to it.
func ForRepository(repo string) *FileLock {
	meta := filepath.Join(repo, ".git")
	if info, err := os.Stat(meta); err == nil && info.IsDir() {
		return NewFileLock(filepath.Join(meta, LockName))
	}
	return NewFileLock(filepath.Join(repo, "."+LockName))
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Acquire takes the lock without blocking and fails with ErrLocked when it
// is already held.
func (fl *FileLock) Acquire() error {
	acquired, err := fl.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%w (%s)", ErrLocked, fl.path)
	}
	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}
