package relcut

import (
	"fmt"
	"strings"
)

// EnsureBranchKind fails with ErrWrongBranch unless the current branch has
// the kind the operation requires.
func EnsureBranchKind(actual BranchInfo, required BranchKind, op string) error {
	if actual.Kind == required {
		return nil
	}
	return fmt.Errorf("%w: %s requires the %s, currently on %q (%s)",
		ErrWrongBranch, op, required, actual.Name, actual.Kind)
}

// EnsureClean fails with ErrDirtyWorkTree if any staged or unstaged
// modification exists. It is re-run before every mutating step that depends
// on a known starting point, since a hook run in between may alter the tree.
func EnsureClean(g Git) error {
	entries, err := g.Status()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrDirtyWorkTree, strings.Join(entries, ", "))
}

// EnsureVersion validates version text, delegating to ParseVersion.
func EnsureVersion(text string) (Version, error) {
	return ParseVersion(text)
}
