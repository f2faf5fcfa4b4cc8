package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/fsnamer/internal/models"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) LogWarn(message string) {
	l.warnings = append(l.warnings, message)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newRepo creates:
//
//	root/
//	  .git/info/exclude    secret.txt
//	  .gitignore           *.tmp, /build/
//	  sub/.gitignore       !keep.tmp, !notes.md
func newRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git", "info", "exclude"), "secret.txt\n")
	writeFile(t, filepath.Join(root, ".gitignore"), "*.tmp\n/build/\n")
	writeFile(t, filepath.Join(root, "sub", ".gitignore"), "!keep.tmp\n!notes.md\n")
	return root
}

func TestResolverVersionControlRules(t *testing.T) {
	root := newRepo(t)
	r, err := NewResolver(Config{Root: root, Repository: root})
	require.NoError(t, err)

	tests := []struct {
		name  string
		path  string
		isDir bool
		want  Decision
	}{
		{"root gitignore", "a.tmp", false, Exclude},
		{"anchored dir", "build", true, Exclude},
		{"anchored dir only at root", "sub/build", true, None},
		{"closer gitignore wins", "sub/keep.tmp", false, Include},
		{"parent rule still applies below", "sub/other.tmp", false, Exclude},
		{"info exclude", "secret.txt", false, Exclude},
		{"plain file", "readme.md", false, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Decide(filepath.Join(root, tt.path), tt.isDir))
		})
	}
}

func TestResolverPrecedence(t *testing.T) {
	root := newRepo(t)
	global := filepath.Join(t.TempDir(), "ignore")
	writeFile(t, global, "*.md\n")

	r, err := NewResolver(Config{
		Root:       root,
		Repository: root,
		Global:     OptionalFile(global),
	})
	require.NoError(t, err)

	// Global beats the closer .gitignore negation.
	assert.Equal(t, Exclude, r.Decide(filepath.Join(root, "sub", "notes.md"), false))

	r, err = NewResolver(Config{
		Root:       root,
		Repository: root,
		Explicit:   []Source{Patterns{"!readme.md"}},
		Global:     OptionalFile(global),
	})
	require.NoError(t, err)

	// Per-invocation rules beat the global file.
	assert.Equal(t, Include, r.Decide(filepath.Join(root, "readme.md"), false))
	assert.Equal(t, Exclude, r.Decide(filepath.Join(root, "other.md"), false))
}

func TestResolverLaterExplicitSourceWins(t *testing.T) {
	root := t.TempDir()
	r, err := NewResolver(Config{
		Root:     root,
		Explicit: []Source{Patterns{"*.csv"}, Patterns{"!data.csv"}},
	})
	require.NoError(t, err)

	assert.Equal(t, Include, r.Decide(filepath.Join(root, "data.csv"), false))
	assert.Equal(t, Exclude, r.Decide(filepath.Join(root, "other.csv"), false))
}

func TestResolverIgnoresGitignoreWithoutRepository(t *testing.T) {
	root := newRepo(t)
	r, err := NewResolver(Config{Root: root})
	require.NoError(t, err)

	assert.Equal(t, None, r.Decide(filepath.Join(root, "a.tmp"), false))
	assert.True(t, r.ShouldVisit(filepath.Join(root, "a.tmp"), false))
}

func TestResolverHiddenEntries(t *testing.T) {
	root := newRepo(t)

	r, err := NewResolver(Config{Root: root, Repository: root})
	require.NoError(t, err)
	assert.False(t, r.ShouldVisit(filepath.Join(root, ".env"), false))
	assert.False(t, r.ShouldVisit(filepath.Join(root, ".git"), true))

	r, err = NewResolver(Config{Root: root, Repository: root, IncludeHidden: true})
	require.NoError(t, err)
	assert.True(t, r.ShouldVisit(filepath.Join(root, ".env"), false))
	assert.False(t, r.ShouldVisit(filepath.Join(root, ".git"), true), ".git is never visited")

	r, err = NewResolver(Config{Root: root, Explicit: []Source{Patterns{"!.github/"}}})
	require.NoError(t, err)
	assert.True(t, r.ShouldVisit(filepath.Join(root, ".github"), true), "a negated rule re-includes a hidden entry")
}

func TestResolverExplicitFileMustExist(t *testing.T) {
	root := t.TempDir()
	_, err := NewResolver(Config{
		Root:     root,
		Explicit: []Source{File(filepath.Join(root, "missing-ignore"))},
	})
	require.Error(t, err)

	var ioErr *models.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestResolverMalformedRulesOnlyWarn(t *testing.T) {
	root := newRepo(t)
	writeFile(t, filepath.Join(root, "sub", "deeper", ".gitignore"), "[broken\n*.bak\n")
	global := filepath.Join(t.TempDir(), "ignore")
	writeFile(t, global, "[also-broken\n")

	log := &recordingLogger{}
	r, err := NewResolver(Config{
		Root:       root,
		Repository: root,
		Global:     OptionalFile(global),
		Logger:     log,
	})
	require.NoError(t, err)
	require.Len(t, log.warnings, 1)

	assert.Equal(t, Exclude, r.Decide(filepath.Join(root, "sub", "deeper", "x.bak"), false))
	assert.Len(t, log.warnings, 2)

	// The cached ruleset is not reparsed.
	r.Decide(filepath.Join(root, "sub", "deeper", "y.bak"), false)
	assert.Len(t, log.warnings, 2)
}

func TestOptionalFileMissing(t *testing.T) {
	rs, err := OptionalFile(filepath.Join(t.TempDir(), "nope")).Load("/")
	require.NoError(t, err)
	assert.Nil(t, rs)

	rs, err = OptionalFile("").Load("/")
	require.NoError(t, err)
	assert.Nil(t, rs)
}
