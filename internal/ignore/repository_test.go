package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/fsnamer/internal/models"
)

func TestFindRepository(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := FindRepository(nested)
	require.NoError(t, err)
	assert.Equal(t, root, got)

	got, err = FindRepository(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRepositoryWorktreeFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".git"), "gitdir: /elsewhere/.git/worktrees/x\n")

	got, err := FindRepository(root)
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestFindRepositoryMissing(t *testing.T) {
	root := t.TempDir()

	_, err := FindRepository(root)
	require.Error(t, err)
	assert.True(t, models.IsNoRepository(err))
}
