// Package fixer renames files to a canonical naming convention, either in
// place over a directory tree or as a line-oriented name translator.
package fixer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harrison/fsnamer/internal/codec"
	"github.com/harrison/fsnamer/internal/models"
	"github.com/harrison/fsnamer/internal/walker"
)

// Renamer moves a filesystem entry. Implementations must not overwrite an
// existing target; the engine checks for collisions before calling Rename.
type Renamer interface {
	Rename(oldPath, newPath string) error
}

// OSRenamer renames through os.Rename.
type OSRenamer struct{}

// Rename implements Renamer.
func (OSRenamer) Rename(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

// Logger receives per-entry progress from the engine.
type Logger interface {
	LogRename(outcome models.RenameOutcome)
	LogWarn(message string)
}

// Engine applies a convention to filenames.
type Engine struct {
	Convention codec.Convention
	// Renamer defaults to OSRenamer when nil.
	Renamer Renamer
	// Logger may be nil.
	Logger Logger
	// DryRun computes outcomes without renaming anything.
	DryRun bool
}

// FixTree walks opts.Root and renames every regular file (and, with
// includeDirs, every other entry) whose canonical name differs from its
// current one. Per-entry failures are collected in the result; a walk error
// stops the run and is returned together with the partial result.
func (e *Engine) FixTree(opts walker.Options, includeDirs bool) (*models.FixResult, error) {
	start := time.Now()
	result := &models.FixResult{}
	planned := make(map[string]bool)

	for entry, err := range walker.Walk(opts) {
		if err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
		if !entry.IsRegular() && !includeDirs {
			continue
		}

		outcome, err := e.fixEntry(entry.Path, planned)
		if err != nil {
			result.Errors = append(result.Errors, err)
			e.warn(err.Error())
			continue
		}

		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Renamed {
			result.Renamed++
			if e.Logger != nil {
				e.Logger.LogRename(outcome)
			}
		} else {
			result.Unchanged++
		}
	}

	result.Duration = time.Since(start)
	return result, nil
}

// fixEntry renames one entry within its parent directory. planned holds the
// targets already claimed in this run, so a dry run reports the same
// collisions a real run would hit.
func (e *Engine) fixEntry(path string, planned map[string]bool) (models.RenameOutcome, error) {
	dir, name := filepath.Split(path)
	outcome := models.RenameOutcome{OriginalPath: path, NewPath: path}

	canonical, err := codec.Normalize(name, e.Convention)
	if err != nil {
		return outcome, fmt.Errorf("%s: %w", path, err)
	}
	if canonical == name {
		return outcome, nil
	}

	target := filepath.Join(dir, canonical)
	if planned[target] {
		return outcome, collision(path, target)
	}
	if err := checkCollision(path, target); err != nil {
		return outcome, err
	}

	if !e.DryRun {
		if err := e.renamer().Rename(path, target); err != nil {
			return outcome, &models.IOError{Op: "rename", Path: path, Err: err}
		}
	}

	planned[target] = true
	outcome.NewPath = target
	outcome.Renamed = true
	return outcome, nil
}

// checkCollision fails when target exists and is a different entry than
// source. A target that resolves to source itself is a case-only rename on a
// case-insensitive filesystem.
func checkCollision(source, target string) error {
	targetInfo, err := os.Lstat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &models.IOError{Op: "stat", Path: target, Err: err}
	}

	sourceInfo, err := os.Lstat(source)
	if err != nil {
		return &models.IOError{Op: "stat", Path: source, Err: err}
	}
	if os.SameFile(sourceInfo, targetInfo) {
		return nil
	}

	return collision(source, target)
}

func collision(source, target string) error {
	return &models.IOError{
		Op:   "rename",
		Path: source,
		Err:  fmt.Errorf("%w: %s", models.ErrTargetExists, target),
	}
}

// FixStream reads one name per line from r and writes its canonical form to
// w. Only the final path segment of each line is translated. Reading stops at
// EOF or at the first empty line. Untranslatable lines are recorded in the
// result and skipped.
func (e *Engine) FixStream(r io.Reader, w io.Writer) (*models.FixResult, error) {
	start := time.Now()
	result := &models.FixResult{}
	out := bufio.NewWriter(w)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		name := filepath.Base(line)
		canonical, err := codec.Normalize(name, e.Convention)
		if err != nil {
			result.Errors = append(result.Errors, err)
			e.warn(err.Error())
			continue
		}

		if _, err := fmt.Fprintln(out, canonical); err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("write output: %w", err)
		}
		outcome := models.RenameOutcome{OriginalPath: line, NewPath: canonical, Renamed: canonical != name}
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Renamed {
			result.Renamed++
		} else {
			result.Unchanged++
		}
	}

	if err := out.Flush(); err != nil {
		result.Duration = time.Since(start)
		return result, fmt.Errorf("write output: %w", err)
	}

	result.Duration = time.Since(start)
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read input: %w", err)
	}
	return result, nil
}

func (e *Engine) renamer() Renamer {
	if e.Renamer == nil {
		return OSRenamer{}
	}
	return e.Renamer
}

func (e *Engine) warn(message string) {
	if e.Logger != nil {
		e.Logger.LogWarn(message)
	}
}
