package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/fsnamer/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
	Plain      bool     // Omit ANSI color codes
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	if !w.Plain {
		b.WriteString("\x1b[33m")
	}
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}

		for i, file := range w.Files {
			b.WriteString("      ")
			b.WriteString(fmt.Sprintf("%d. %s", i+1, file))
			b.WriteString("\n")
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	if !w.Plain {
		b.WriteString("\x1b[0m")
	}

	fmt.Fprint(out, b.String())
}

// WarnRenameFailures creates a warning listing the entries a fix run could
// not rename.
func WarnRenameFailures(errs []error) Warning {
	files := make([]string, 0, len(errs))
	collision := false
	for _, err := range errs {
		files = append(files, err.Error())
		if errors.Is(err, models.ErrTargetExists) {
			collision = true
		}
	}

	w := Warning{
		Title: fmt.Sprintf("%d %s could not be renamed", len(errs), plural(len(errs), "entry", "entries")),
		Files: files,
	}
	if collision {
		w.Suggestion = "Rename or remove the conflicting files and run fix again"
	}
	return w
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
