// Package checker validates filenames in configured groups against per-group
// regular expressions. It never modifies the filesystem.
package checker

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/harrison/fsnamer/internal/ignore"
	"github.com/harrison/fsnamer/internal/models"
	"github.com/harrison/fsnamer/internal/walker"
)

// Logger receives per-group and per-file progress.
type Logger interface {
	LogGroupStart(group models.CheckGroup)
	LogCheck(path string, ok bool)
	LogWarn(message string)
}

// Checker evaluates check groups.
type Checker struct {
	RequireRepository bool
	IncludeHidden     bool
	// Global is the user-level ignore source applied to every group.
	Global ignore.Source
	Logger Logger
	// KeepGoing reports every mismatch instead of stopping at the first one.
	KeepGoing bool
}

type compiledGroup struct {
	models.CheckGroup
	re *regexp.Regexp
}

// CheckGroups validates every group, then checks them in order. The first
// mismatch is returned as a *models.PatternMismatchError unless KeepGoing is
// set, in which case all mismatches are joined.
func (c *Checker) CheckGroups(groups []models.CheckGroup) error {
	compiled := make([]compiledGroup, 0, len(groups))
	for _, g := range groups {
		cg, err := compile(g)
		if err != nil {
			return err
		}
		compiled = append(compiled, cg)
	}

	var mismatches []error
	for _, g := range compiled {
		if c.Logger != nil {
			c.Logger.LogGroupStart(g.CheckGroup)
		}

		found, err := c.checkGroup(g)
		if err != nil {
			return err
		}
		mismatches = append(mismatches, found...)
		if len(mismatches) > 0 && !c.KeepGoing {
			return mismatches[0]
		}
	}

	return errors.Join(mismatches...)
}

// compile checks that a group is usable before any file is tested.
func compile(g models.CheckGroup) (compiledGroup, error) {
	re, err := regexp.Compile(g.Pattern)
	if err != nil {
		return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("invalid pattern: %w", err)}
	}

	info, err := os.Stat(g.Path)
	if err != nil {
		return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("path: %w", err)}
	}
	if !info.IsDir() {
		return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("path %s is not a directory", g.Path)}
	}
	if err := readable(g.Path); err != nil {
		return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("path: %w", err)}
	}

	for _, f := range g.Ignore {
		info, err := os.Stat(f)
		if err != nil {
			return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("ignore file: %w", err)}
		}
		if info.IsDir() {
			return compiledGroup{}, &models.ConfigError{Source: g.Name, Err: fmt.Errorf("ignore file %s is a directory", f)}
		}
	}

	return compiledGroup{CheckGroup: g, re: re}, nil
}

// readable reports whether dir can be listed.
func readable(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Checker) checkGroup(g compiledGroup) ([]error, error) {
	sources := make([]ignore.Source, 0, len(g.Ignore)+1)
	for _, f := range g.Ignore {
		sources = append(sources, ignore.File(f))
	}
	if len(g.Exclude) > 0 {
		sources = append(sources, ignore.Patterns(g.Exclude))
	}

	opts := walker.Options{
		Root:              g.Path,
		MaxDepth:          g.MaxDepth(),
		RequireRepository: c.RequireRepository,
		Ignore:            sources,
		Global:            c.Global,
		IncludeHidden:     c.IncludeHidden,
	}
	if c.Logger != nil {
		opts.Logger = c.Logger
	}

	var mismatches []error
	for entry, err := range walker.Walk(opts) {
		if err != nil {
			return mismatches, fmt.Errorf("check %s: %w", g.Name, err)
		}
		if !entry.IsRegular() {
			continue
		}

		ok := g.re.MatchString(entry.Name())
		if c.Logger != nil {
			c.Logger.LogCheck(entry.Path, ok)
		}
		if ok {
			continue
		}

		mismatches = append(mismatches, &models.PatternMismatchError{
			Group:   g.Name,
			Path:    entry.Path,
			Pattern: g.Pattern,
		})
		if !c.KeepGoing {
			break
		}
	}

	return mismatches, nil
}
