package models

import "time"

// RenameOutcome is the result of running one entry through the fix engine.
// Renamed is false when the canonical name equals the current one.
type RenameOutcome struct {
	OriginalPath string
	NewPath      string
	Renamed      bool
}

// FixResult aggregates a fix run. Errors holds the per-entry failures that did
// not stop the run.
type FixResult struct {
	Renamed   int
	Unchanged int
	Outcomes  []RenameOutcome
	Errors    []error
	Duration  time.Duration
}

// Failed reports whether any entry failed.
func (r *FixResult) Failed() bool {
	return len(r.Errors) > 0
}
