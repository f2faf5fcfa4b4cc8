package fixer

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/fsnamer/internal/codec"
	"github.com/harrison/fsnamer/internal/models"
	"github.com/harrison/fsnamer/internal/walker"
)

type recordingLogger struct {
	renames  []models.RenameOutcome
	warnings []string
}

func (l *recordingLogger) LogRename(outcome models.RenameOutcome) {
	l.renames = append(l.renames, outcome)
}

func (l *recordingLogger) LogWarn(message string) {
	l.warnings = append(l.warnings, message)
}

type recordingRenamer struct {
	calls [][2]string
	err   error
}

func (r *recordingRenamer) Rename(oldPath, newPath string) error {
	r.calls = append(r.calls, [2]string{oldPath, newPath})
	return r.err
}

func newRepo(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f), 0644))
	}
	return root
}

func listNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if e.Name() == ".git" {
			continue
		}
		names = append(names, e.Name())
	}
	return names
}

func TestFixTreeEndToEnd(t *testing.T) {
	root := newRepo(t, "mY_wRong File-0", "mY_wRong File-1")
	engine := &Engine{Convention: codec.KebabCase}
	opts := walker.Options{Root: root, MaxDepth: 1, RequireRepository: true}

	result, err := engine.FixTree(opts, false)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Renamed)
	assert.False(t, result.Failed())
	assert.Equal(t, []string{"my-w-rong-file-0", "my-w-rong-file-1"}, listNames(t, root))

	data, err := os.ReadFile(filepath.Join(root, "my-w-rong-file-0"))
	require.NoError(t, err)
	assert.Equal(t, "mY_wRong File-0", string(data), "content is untouched")

	again, err := engine.FixTree(opts, false)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Renamed)
	assert.Equal(t, 2, again.Unchanged)
}

func TestFixTreeLogsRenames(t *testing.T) {
	root := newRepo(t, "Hello World.md", "done.md")
	log := &recordingLogger{}
	engine := &Engine{Convention: codec.SnakeCase, Logger: log}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)

	require.Len(t, log.renames, 1)
	assert.Equal(t, filepath.Join(root, "Hello World.md"), log.renames[0].OriginalPath)
	assert.Equal(t, filepath.Join(root, "hello_world.md"), log.renames[0].NewPath)
	assert.True(t, log.renames[0].Renamed)
	assert.Len(t, result.Outcomes, 2)
	assert.Equal(t, 1, result.Unchanged)
}

func TestFixTreeCollision(t *testing.T) {
	root := newRepo(t, "Foo Bar.txt", "foo-bar.txt")
	log := &recordingLogger{}
	engine := &Engine{Convention: codec.KebabCase, Logger: log}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err, "collisions do not stop the walk")

	assert.Equal(t, 0, result.Renamed)
	assert.Equal(t, 1, result.Unchanged)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], models.ErrTargetExists)
	var ioErr *models.IOError
	assert.ErrorAs(t, result.Errors[0], &ioErr)
	assert.Len(t, log.warnings, 1)
	assert.Equal(t, []string{"Foo Bar.txt", "foo-bar.txt"}, listNames(t, root))
}

func TestFixTreeDryRun(t *testing.T) {
	root := newRepo(t, "Some File.txt")
	renamer := &recordingRenamer{}
	engine := &Engine{Convention: codec.CamelCase, Renamer: renamer, DryRun: true}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)

	assert.Empty(t, renamer.calls)
	assert.Equal(t, 1, result.Renamed)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, filepath.Join(root, "someFile.txt"), result.Outcomes[0].NewPath)
	assert.Equal(t, []string{"Some File.txt"}, listNames(t, root))
}

func TestFixTreeDryRunReportsSharedTargets(t *testing.T) {
	root := newRepo(t, "A B.txt", "a b.txt")
	renamer := &recordingRenamer{}
	engine := &Engine{Convention: codec.KebabCase, Renamer: renamer, DryRun: true}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)

	assert.Empty(t, renamer.calls)
	assert.Equal(t, 1, result.Renamed)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], models.ErrTargetExists)
	var ioErr *models.IOError
	require.ErrorAs(t, result.Errors[0], &ioErr)
	assert.Equal(t, filepath.Join(root, "a b.txt"), ioErr.Path)
}

func TestFixTreeRenamerFailure(t *testing.T) {
	root := newRepo(t, "A File.txt", "B File.txt")
	renamer := &recordingRenamer{err: errors.New("read-only filesystem")}
	engine := &Engine{Convention: codec.KebabCase, Renamer: renamer}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)

	assert.Len(t, renamer.calls, 2, "one failure does not stop the run")
	assert.Len(t, result.Errors, 2)
	var ioErr *models.IOError
	require.ErrorAs(t, result.Errors[0], &ioErr)
	assert.Equal(t, "rename", ioErr.Op)
	assert.Equal(t, filepath.Join(root, "A File.txt"), ioErr.Path)
}

func TestFixTreeDirectories(t *testing.T) {
	root := newRepo(t, "My Dir/Some File.txt")
	engine := &Engine{Convention: codec.KebabCase}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, []string{"My Dir"}, listNames(t, root), "directories are kept without includeDirs")

	result, err = engine.FixTree(walker.Options{Root: root}, true)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Renamed)
	assert.Equal(t, []string{"my-dir"}, listNames(t, root))
	assert.FileExists(t, filepath.Join(root, "my-dir", "some-file.txt"))
}

func TestFixTreeRenamesNestedDirectoriesBottomUp(t *testing.T) {
	root := newRepo(t, "Outer Dir/Inner Dir/Leaf File.md")
	engine := &Engine{Convention: codec.SnakeCase}

	result, err := engine.FixTree(walker.Options{Root: root}, true)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Renamed)
	assert.Empty(t, result.Errors)
	assert.FileExists(t, filepath.Join(root, "outer_dir", "inner_dir", "leaf_file.md"))
}

func TestFixTreeUntranslatableName(t *testing.T) {
	root := newRepo(t, "日本", "Plain Name.txt")
	engine := &Engine{Convention: codec.KebabCase}

	result, err := engine.FixTree(walker.Options{Root: root}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Renamed)
	require.Len(t, result.Errors, 1)
	var encErr *models.EncodingError
	assert.ErrorAs(t, result.Errors[0], &encErr)
}

func TestFixTreeWalkErrorIsFatal(t *testing.T) {
	root := t.TempDir()
	engine := &Engine{Convention: codec.KebabCase}

	_, err := engine.FixTree(walker.Options{Root: root, RequireRepository: true}, false)

	assert.True(t, models.IsNoRepository(err), "got %v", err)
}

func TestFixStream(t *testing.T) {
	input := strings.Join([]string{
		"Hello World.md",
		"  path/to/Some File.TXT  ",
		"already-fine.md",
		"日本",
		"",
		"After Blank.md",
	}, "\n")
	log := &recordingLogger{}
	engine := &Engine{Convention: codec.KebabCase, Logger: log}

	var out bytes.Buffer
	result, err := engine.FixStream(strings.NewReader(input), &out)
	require.NoError(t, err)

	assert.Equal(t, "hello-world.md\nsome-file.TXT\nalready-fine.md\n", out.String())
	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, 1, result.Unchanged)
	assert.Len(t, result.Errors, 1)
	assert.Len(t, log.warnings, 1)
}

func TestFixStreamNeverTouchesFilesystem(t *testing.T) {
	root := newRepo(t, "Some File.txt")
	renamer := &recordingRenamer{}
	engine := &Engine{Convention: codec.KebabCase, Renamer: renamer}

	var out bytes.Buffer
	_, err := engine.FixStream(strings.NewReader(filepath.Join(root, "Some File.txt")+"\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, "some-file.txt\n", out.String())
	assert.Empty(t, renamer.calls)
	assert.Equal(t, []string{"Some File.txt"}, listNames(t, root))
}

func TestFixStreamEmptyInput(t *testing.T) {
	engine := &Engine{Convention: codec.KebabCase}

	var out bytes.Buffer
	result, err := engine.FixStream(strings.NewReader(""), &out)
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Zero(t, result.Renamed)
}
