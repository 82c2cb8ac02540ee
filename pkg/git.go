package relcut

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Git is the version-control capability the workflow engine consumes. All
// operations act on a single repository working tree.
type Git interface {
	// Dir returns the repository root the collaborator operates on.
	Dir() string
	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch() (string, error)
	// Status returns one entry per staged or unstaged modification, in
	// porcelain form. An empty result means a clean tree.
	Status() ([]string, error)
	// CreateBranch creates the named branch at HEAD and checks it out.
	CreateBranch(name string) error
	// Checkout switches the working tree to an existing branch.
	Checkout(name string) error
	// AddAll stages every pending change in the working tree.
	AddAll() error
	// Commit records staged changes. allowEmpty permits a commit with no
	// changes, used to mark branch initialization points.
	Commit(message string, allowEmpty bool) error
	// Tag creates an annotated tag at HEAD. force replaces an existing
	// tag of the same name; extra args are passed to git verbatim.
	Tag(name, message string, force bool, extra ...string) error
	// TagExists reports whether the named tag already exists.
	TagExists(name string) (bool, error)
	// ConfigGet reads a repository-scoped configuration value. An unset
	// key returns "" with no error.
	ConfigGet(key string) (string, error)
}

// cliGit drives the git executable, one subprocess per operation.
type cliGit struct {
	dir string
}

// OpenGit validates that path is a git repository and returns a collaborator
// bound to it. A missing directory or a directory without a repository fails
// with ErrRepoNotFound.
func OpenGit(path string) (Git, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRepoNotFound, path)
	}
	g := &cliGit{dir: path}
	if _, err := g.run("rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%w: %s is not a git repository", ErrRepoNotFound, path)
	}
	return g, nil
}

func (g *cliGit) Dir() string { return g.dir }

// run executes git with the given arguments in the repository directory,
// capturing stderr for diagnostics.
func (g *cliGit) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return "", fmt.Errorf("git %s failed: %v", args[0], err)
		}
		return "", fmt.Errorf("git %s failed: %s", args[0], detail)
	}
	return strings.TrimSpace(string(out)), nil
}

func (g *cliGit) CurrentBranch() (string, error) {
	return g.run("rev-parse", "--abbrev-ref", "HEAD")
}

func (g *cliGit) Status() ([]string, error) {
	out, err := g.run("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

func (g *cliGit) CreateBranch(name string) error {
	_, err := g.run("checkout", "-b", name)
	return err
}

func (g *cliGit) Checkout(name string) error {
	_, err := g.run("checkout", name)
	return err
}

func (g *cliGit) AddAll() error {
	_, err := g.run("add", "-A")
	return err
}

func (g *cliGit) Commit(message string, allowEmpty bool) error {
	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}
	_, err := g.run(args...)
	return err
}

func (g *cliGit) Tag(name, message string, force bool, extra ...string) error {
	args := []string{"tag", "-a", "-m", message}
	if force {
		args = append(args, "-f")
	}
	args = append(args, extra...)
	args = append(args, name)
	_, err := g.run(args...)
	return err
}

func (g *cliGit) TagExists(name string) (bool, error) {
	out, err := g.run("tag", "-l", name)
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (g *cliGit) ConfigGet(key string) (string, error) {
	cmd := exec.Command("git", "config", "--get", key)
	cmd.Dir = g.dir
	out, err := cmd.Output()
	if err != nil {
		// Exit status 1 means the key is unset.
		if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("git config --get %s failed: %v", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}
