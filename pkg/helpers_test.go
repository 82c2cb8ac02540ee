package relcut

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runGit runs git in dir, failing the test on error.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

// newTestRepo initializes a git repository with one commit on "main".
func newTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")
	runGit(t, dir, "config", "commit.gpgsign", "false")
	runGit(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("test repo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runGit(t, dir, "add", "-A")
	runGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

// commitRecord writes the version record and commits it.
func commitRecord(t *testing.T, dir string, v Version) {
	t.Helper()
	if err := SaveRecord(filepath.Join(dir, "version.properties"), v); err != nil {
		t.Fatal(err)
	}
	runGit(t, dir, "add", "-A")
	runGit(t, dir, "commit", "-m", "record "+v.String())
}

// commitCount returns the number of commits on the current branch.
func commitCount(t *testing.T, dir string) int {
	t.Helper()
	out := runGit(t, dir, "rev-list", "--count", "HEAD")
	n := 0
	for _, c := range out {
		n = n*10 + int(c-'0')
	}
	return n
}

// fakeGit is an in-memory Git implementation for tests that do not need a
// real repository.
type fakeGit struct {
	dir      string
	branch   string
	status   []string
	config   map[string]string
	tags     map[string]bool
	commits  []string
	branches []string
}

func (f *fakeGit) Dir() string {
	if f.dir == "" {
		return "."
	}
	return f.dir
}

func (f *fakeGit) CurrentBranch() (string, error) { return f.branch, nil }
func (f *fakeGit) Status() ([]string, error)      { return f.status, nil }

func (f *fakeGit) CreateBranch(name string) error {
	f.branches = append(f.branches, name)
	f.branch = name
	return nil
}

func (f *fakeGit) Checkout(name string) error {
	f.branch = name
	return nil
}

func (f *fakeGit) AddAll() error { return nil }

func (f *fakeGit) Commit(message string, allowEmpty bool) error {
	f.commits = append(f.commits, message)
	return nil
}

func (f *fakeGit) Tag(name, message string, force bool, extra ...string) error {
	if f.tags == nil {
		f.tags = map[string]bool{}
	}
	f.tags[name] = true
	return nil
}

func (f *fakeGit) TagExists(name string) (bool, error) { return f.tags[name], nil }
func (f *fakeGit) ConfigGet(key string) (string, error) {
	return f.config[key], nil
}

// recordingConfirmer counts Confirm calls and answers with a fixed value or
// the offered default.
type recordingConfirmer struct {
	answer string
	calls  int
}

func (c *recordingConfirmer) Confirm(prompt, def string) (string, error) {
	c.calls++
	if c.answer != "" {
		return c.answer, nil
	}
	return def, nil
}
