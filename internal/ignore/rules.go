package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Decision is the verdict of a rule layer for one path.
type Decision int

const (
	// None means no rule matched.
	None Decision = iota
	// Exclude means the path is ignored.
	Exclude
	// Include means a negated rule re-included the path.
	Include
)

func (d Decision) String() string {
	switch d {
	case Exclude:
		return "exclude"
	case Include:
		return "include"
	default:
		return "none"
	}
}

// Rule is one compiled ignore pattern.
type Rule struct {
	// Line is the pattern as written.
	Line    string
	Negate  bool
	DirOnly bool

	glob string
}

// Ruleset is an ordered list of rules relative to Base.
type Ruleset struct {
	// Base is the absolute directory the rules are relative to.
	Base string
	// Origin names where the rules came from, for warnings.
	Origin string
	Rules  []Rule
	// Warnings holds lines that could not be compiled. They are skipped.
	Warnings []error
}

// ParseRules compiles gitignore-syntax content. Malformed lines are reported
// in Warnings and skipped.
func ParseRules(base, origin string, content []byte) *Ruleset {
	rs := &Ruleset{Base: base, Origin: origin}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		rule, ok, err := parseLine(line)
		if err != nil {
			rs.Warnings = append(rs.Warnings, fmt.Errorf("%s:%d: %w", origin, i+1, err))
			continue
		}
		if ok {
			rs.Rules = append(rs.Rules, rule)
		}
	}

	return rs
}

func parseLine(line string) (Rule, bool, error) {
	line = trimTrailingSpace(strings.TrimSuffix(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false, nil
	}

	rule := Rule{Line: line}
	switch {
	case strings.HasPrefix(line, "!"):
		rule.Negate = true
		line = line[1:]
	case strings.HasPrefix(line, `\!`), strings.HasPrefix(line, `\#`):
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") {
		rule.DirOnly = true
		line = strings.TrimRight(line, "/")
	}
	if line == "" {
		return Rule{}, false, fmt.Errorf("empty pattern %q", rule.Line)
	}

	anchored := strings.Contains(line, "/")
	glob := escapeBraces(strings.TrimPrefix(line, "/"))
	if !anchored {
		glob = "**/" + glob
	}
	// "dir/**" matches inside dir only; doublestar would also match dir.
	if strings.HasSuffix(glob, "/**") {
		glob += "/*"
	}
	if !doublestar.ValidatePattern(glob) {
		return Rule{}, false, fmt.Errorf("invalid pattern %q", rule.Line)
	}
	rule.glob = glob

	return rule, true, nil
}

// trimTrailingSpace drops trailing spaces that are not escaped with a backslash.
func trimTrailingSpace(s string) string {
	for strings.HasSuffix(s, " ") && !strings.HasSuffix(s, `\ `) {
		s = s[:len(s)-1]
	}
	return s
}

// escapeBraces turns brace alternation off: gitignore treats braces literally.
func escapeBraces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
			continue
		}
		if c == '{' || c == '}' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Match returns the decision of the last rule matching rel, a slash- or
// OS-separated path relative to Base.
func (rs *Ruleset) Match(rel string, isDir bool) Decision {
	if rs == nil {
		return None
	}
	rel = filepath.ToSlash(rel)
	for i := len(rs.Rules) - 1; i >= 0; i-- {
		r := rs.Rules[i]
		if r.DirOnly && !isDir {
			continue
		}
		if ok, _ := doublestar.Match(r.glob, rel); ok {
			if r.Negate {
				return Include
			}
			return Exclude
		}
	}
	return None
}

// MatchPath is Match for an absolute path. Paths outside Base never match.
func (rs *Ruleset) MatchPath(path string, isDir bool) Decision {
	if rs == nil {
		return None
	}
	rel, err := filepath.Rel(rs.Base, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return None
	}
	return rs.Match(rel, isDir)
}
