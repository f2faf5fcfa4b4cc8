package models

// CheckGroup is one named entry of the check configuration. Groups are
// independent of each other and evaluated in order.
type CheckGroup struct {
	Name    string
	Path    string
	Pattern string
	// Ignore lists ignore files (gitignore syntax) applied to the group's walk.
	Ignore []string
	// Exclude lists inline ignore patterns.
	Exclude   []string
	Recursive bool
}

// MaxDepth translates Recursive into a walker depth limit (0 = unbounded).
func (g CheckGroup) MaxDepth() int {
	if g.Recursive {
		return 0
	}
	return 1
}
