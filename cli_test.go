package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	relcut "github.com/relcut/relcut/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain triggers the CLI as a subprocess when GO_HELPER_PROCESS is set.
func TestMain(m *testing.M) {
	if os.Getenv("GO_HELPER_PROCESS") == "1" {
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runCLI runs the CLI in helper process mode.
func runCLI(args ...string) (string, error) {
	cmd := exec.Command(os.Args[0], args...)
	cmd.Env = append(os.Environ(), "GO_HELPER_PROCESS=1")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	gitIn(t, dir, "init")
	gitIn(t, dir, "config", "user.email", "test@example.com")
	gitIn(t, dir, "config", "user.name", "Test User")
	gitIn(t, dir, "config", "commit.gpgsign", "false")
	gitIn(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("repo\n"), 0o644))
	gitIn(t, dir, "add", "-A")
	gitIn(t, dir, "commit", "-m", "initial commit")
	return dir
}

func TestCLIHelp(t *testing.T) {
	out, err := runCLI("--help")
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "set-version")
}

func TestCLIVersion(t *testing.T) {
	out, err := runCLI("version")
	assert.NoError(t, err)
	assert.Contains(t, out, "relcut version")
}

func TestCLIUnknownCommand(t *testing.T) {
	out, err := runCLI("frobnicate")
	assert.Error(t, err)
	assert.Contains(t, out, `unknown command "frobnicate"`)
}

func TestCLINoArgs(t *testing.T) {
	out, err := runCLI()
	assert.Error(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestCLISetVersionFirstUse(t *testing.T) {
	dir := setupRepo(t)
	out, err := runCLI("set-version", "--yes", "-C", dir)
	require.NoError(t, err, out)

	v, err := relcut.LoadRecord(filepath.Join(dir, "version.properties"))
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", v.String())
	assert.Contains(t, out, "main")
	assert.Contains(t, out, "0.2.0-dev")
}

func TestCLIBranchAndTagFlow(t *testing.T) {
	dir := setupRepo(t)
	out, err := runCLI("set-version", "2.7.0", "--yes", "-C", dir)
	require.NoError(t, err, out)

	out, err = runCLI("branch", "--yes", "-C", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "release/2.7")

	v, err := relcut.LoadRecord(filepath.Join(dir, "version.properties"))
	require.NoError(t, err)
	assert.Equal(t, "2.8.0", v.String(), "trunk advanced")

	gitIn(t, dir, "checkout", "release/2.7")
	out, err = runCLI("tag", "--yes", "-C", dir)
	require.NoError(t, err, out)

	v, err = relcut.LoadRecord(filepath.Join(dir, "version.properties"))
	require.NoError(t, err)
	assert.Equal(t, "2.7.1", v.String())

	// Tagging again at 2.7.1 works; re-tagging the same version needs force.
	out, err = runCLI("tag", "--yes", "-C", dir)
	require.NoError(t, err, out)
}

func TestCLITagOnTrunkFails(t *testing.T) {
	dir := setupRepo(t)
	out, err := runCLI("tag", "--yes", "-C", dir)
	assert.Error(t, err)
	assert.Contains(t, out, "wrong branch")
}

func TestCLIMultiRepoIsolatesFailures(t *testing.T) {
	good := setupRepo(t)
	bad := t.TempDir() // not a git repository

	out, err := runCLI("set-version", "--yes", good, bad)
	assert.Error(t, err, "failing repository yields a non-zero exit")
	assert.Contains(t, out, "==> "+good)
	assert.Contains(t, out, "==> "+bad)
	assert.Contains(t, out, "repository not found")

	v, err := relcut.LoadRecord(filepath.Join(good, "version.properties"))
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", v.String(), "healthy repository still processed")
}

func TestCLIManifest(t *testing.T) {
	repoA := setupRepo(t)
	repoB := setupRepo(t)
	manifest := filepath.Join(t.TempDir(), "relcut.yml")
	content := "repositories:\n  - " + repoA + "\n  - " + repoB + "\n"
	require.NoError(t, os.WriteFile(manifest, []byte(content), 0o644))

	out, err := runCLI("set-version", "1.0.0", "--yes", "--manifest", manifest)
	require.NoError(t, err, out)
	assert.True(t, strings.Index(out, "==> "+repoA) < strings.Index(out, "==> "+repoB),
		"manifest order preserved")

	for _, dir := range []string{repoA, repoB} {
		v, err := relcut.LoadRecord(filepath.Join(dir, "version.properties"))
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", v.String())
	}
}
