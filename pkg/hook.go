package relcut

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Hook propagates a computed version into external version-bearing files.
// Implementations run before the commit that follows version computation, so
// any files they touch become part of that commit.
type Hook interface {
	Apply(version, postfix string) error
}

// NoopHook is the null implementation used when no hook is configured.
type NoopHook struct{}

func (NoopHook) Apply(version, postfix string) error { return nil }

// ExecHook invokes an external executable as "<path> <version> <postfix>"
// with the repository root as working directory. An absent hook file is not
// an error; a non-zero exit fails with ErrHookFailed and aborts the
// remaining operation sequence.
type ExecHook struct {
	Path string
	Dir  string
}

// ResolveHook returns the hook for a configured path. An empty path yields
// the null implementation. Relative paths resolve against the repository
// root.
func ResolveHook(path, dir string) Hook {
	if path == "" {
		return NoopHook{}
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	return &ExecHook{Path: path, Dir: dir}
}

func (h *ExecHook) Apply(version, postfix string) error {
	info, err := os.Stat(h.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: stat %s: %v", ErrHookFailed, h.Path, err)
	}
	if info.Mode()&0o111 == 0 {
		return nil
	}
	cmd := exec.Command(h.Path, version, postfix)
	cmd.Dir = h.Dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return fmt.Errorf("%w: %s: %v", ErrHookFailed, h.Path, err)
		}
		return fmt.Errorf("%w: %s: %s", ErrHookFailed, h.Path, detail)
	}
	return nil
}
