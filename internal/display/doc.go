// Package display renders user-facing warning blocks for the fsnamer CLI.
//
// Display a warning with optional components:
//
//	warning := display.Warning{
//	    Title:      "Some files could not be renamed",
//	    Files:      []string{"docs/Foo Bar.md: target already exists"},
//	    Suggestion: "Rename or remove the conflicting files and run fix again",
//	}
//	warning.Display(os.Stderr)
//
// Or build one from the per-entry errors of a fix run:
//
//	if result.Failed() {
//	    display.WarnRenameFailures(result.Errors).Display(os.Stderr)
//	}
//
// Warnings are yellow (\x1b[33m) followed by a reset (\x1b[0m) unless Plain
// is set. All functions accept io.Writer interfaces for testability.
package display
