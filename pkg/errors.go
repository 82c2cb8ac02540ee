package relcut

import "errors"

// Failure taxonomy for release operations. Callers match these with
// errors.Is; every operation error wraps exactly one of them.
var (
	// ErrInvalidVersion reports version text that does not satisfy the
	// major.minor.patch grammar.
	ErrInvalidVersion = errors.New("invalid version format")

	// ErrWrongBranch reports an operation invoked from a branch kind it
	// does not support.
	ErrWrongBranch = errors.New("wrong branch for operation")

	// ErrDirtyWorkTree reports staged or unstaged modifications in the
	// working tree.
	ErrDirtyWorkTree = errors.New("working tree has uncommitted changes")

	// ErrRecordMissing reports an absent version record file. Recoverable
	// via InitRecord.
	ErrRecordMissing = errors.New("version record not found")

	// ErrTagExists reports an already-present tag name. Recoverable via
	// the force flag.
	ErrTagExists = errors.New("tag already exists")

	// ErrHookFailed reports a non-zero exit from the configured version
	// hook.
	ErrHookFailed = errors.New("version hook failed")

	// ErrRepoNotFound reports a path that is not a git repository.
	ErrRepoNotFound = errors.New("repository not found")
)
