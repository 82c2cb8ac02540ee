package relcut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenGitMissingPath(t *testing.T) {
	_, err := OpenGit(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrRepoNotFound)
}

func TestOpenGitNotARepo(t *testing.T) {
	_, err := OpenGit(t.TempDir())
	assert.ErrorIs(t, err, ErrRepoNotFound)
}

func TestCurrentBranchAndStatus(t *testing.T) {
	dir := newTestRepo(t)
	g, err := OpenGit(dir)
	require.NoError(t, err)

	branch, err := g.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)

	entries, err := g.Status()
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x\n"), 0o644))
	entries, err = g.Status()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBranchCheckoutCommit(t *testing.T) {
	dir := newTestRepo(t)
	g, err := OpenGit(dir)
	require.NoError(t, err)

	require.NoError(t, g.CreateBranch("release/1.0"))
	branch, err := g.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "release/1.0", branch)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("note\n"), 0o644))
	require.NoError(t, g.AddAll())
	require.NoError(t, g.Commit("add note", false))

	entries, err := g.Status()
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, g.Checkout("main"))
	branch, err = g.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestCommitAllowEmpty(t *testing.T) {
	dir := newTestRepo(t)
	g, err := OpenGit(dir)
	require.NoError(t, err)

	assert.Error(t, g.Commit("nothing staged", false))
	assert.NoError(t, g.Commit("branch point", true))
}

func TestTagLifecycle(t *testing.T) {
	dir := newTestRepo(t)
	g, err := OpenGit(dir)
	require.NoError(t, err)

	exists, err := g.TagExists("1.0.0")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, g.Tag("1.0.0", "1.0.0", false))
	exists, err = g.TagExists("1.0.0")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same name without force is refused by git itself.
	assert.Error(t, g.Tag("1.0.0", "again", false))
	assert.NoError(t, g.Tag("1.0.0", "replaced", true))
}

func TestConfigGetUnsetKey(t *testing.T) {
	dir := newTestRepo(t)
	g, err := OpenGit(dir)
	require.NoError(t, err)

	v, err := g.ConfigGet("relcut.trunk")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	runGit(t, dir, "config", "relcut.trunk", "main")
	v, err = g.ConfigGet("relcut.trunk")
	require.NoError(t, err)
	assert.Equal(t, "main", v)
}
