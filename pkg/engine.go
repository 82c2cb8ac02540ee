package relcut

import (
	"fmt"
	"path/filepath"
)

// Engine sequences the release operations for a single repository, driving
// the policy, guards, record store, VCS collaborator, and optional hook.
type Engine struct {
	git     Git
	cfg     Config
	confirm Confirmer
	hook    Hook
}

// NewEngine builds an engine for one repository. The hook is resolved from
// the configuration; an unset hook path yields the null implementation.
func NewEngine(g Git, cfg Config, confirm Confirmer) *Engine {
	return &Engine{
		git:     g,
		cfg:     cfg,
		confirm: confirm,
		hook:    ResolveHook(cfg.HookPath, g.Dir()),
	}
}

// TagOptions carries the tag operation's arguments. Extra is passed to the
// underlying VCS tag primitive verbatim.
type TagOptions struct {
	Force   bool
	Message string
	Extra   []string
}

func (e *Engine) recordPath() string {
	if filepath.IsAbs(e.cfg.RecordFile) {
		return e.cfg.RecordFile
	}
	return filepath.Join(e.git.Dir(), e.cfg.RecordFile)
}

func (e *Engine) classifyCurrent() (BranchInfo, error) {
	name, err := e.git.CurrentBranch()
	if err != nil {
		return BranchInfo{}, err
	}
	return Classify(name, e.cfg.TrunkBranch, e.cfg.ReleasePrefix), nil
}

// loadOrInit returns the recorded version, creating the record through the
// confirmer on first use.
func (e *Engine) loadOrInit() (Version, error) {
	seed, err := ParseVersion(e.cfg.InitialVersion)
	if err != nil {
		return Version{}, fmt.Errorf("configured initial version: %w", err)
	}
	return InitRecord(e.recordPath(), seed, e.confirm)
}

// persistAndCommit writes the record, runs the hook so its edits join the
// pending commit, stages everything, and commits. allowEmpty marks commits
// that may legitimately contain no changes.
func (e *Engine) persistAndCommit(v Version, postfix string, allowEmpty bool) error {
	if err := SaveRecord(e.recordPath(), v); err != nil {
		return err
	}
	if err := e.hook.Apply(v.String(), postfix); err != nil {
		return err
	}
	if err := e.git.AddAll(); err != nil {
		return err
	}
	return e.git.Commit(v.Decorate(postfix), allowEmpty)
}

// SetVersion records an explicit or confirmed-default version on trunk.
// With no explicit version the default is the current version with the
// minor bumped, subject to confirmation.
func (e *Engine) SetVersion(explicit string) (StatusReport, error) {
	info, err := e.classifyCurrent()
	if err != nil {
		return StatusReport{}, err
	}
	if err := EnsureBranchKind(info, BranchTrunk, "set-version"); err != nil {
		return StatusReport{}, err
	}
	if err := EnsureClean(e.git); err != nil {
		return StatusReport{}, err
	}
	current, err := e.loadOrInit()
	if err != nil {
		return StatusReport{}, err
	}
	plan, err := PlanSetVersion(current, explicit)
	if err != nil {
		return StatusReport{}, err
	}
	next := plan.Next
	if explicit == "" {
		answer, err := e.confirm.Confirm("Next version", plan.Next.String())
		if err != nil {
			return StatusReport{}, err
		}
		if next, err = EnsureVersion(answer); err != nil {
			return StatusReport{}, err
		}
	}
	if err := e.persistAndCommit(next, e.cfg.TrunkPostfix, false); err != nil {
		return StatusReport{}, err
	}
	return StatusReport{
		TrunkBranch: info.Name,
		TrunkPrev:   current.Decorate(e.cfg.TrunkPostfix),
		TrunkNext:   next.Decorate(e.cfg.TrunkPostfix),
	}, nil
}

// Branch cuts a release branch from trunk. The release branch keeps the
// current version unchanged; trunk advances to the next minor. The two
// commits across two branches are not transactional: a failure after the
// branch is created leaves the repository on the new branch for the
// operator to inspect.
func (e *Engine) Branch() (StatusReport, error) {
	info, err := e.classifyCurrent()
	if err != nil {
		return StatusReport{}, err
	}
	if err := EnsureBranchKind(info, BranchTrunk, "branch"); err != nil {
		return StatusReport{}, err
	}
	if err := EnsureClean(e.git); err != nil {
		return StatusReport{}, err
	}
	current, err := e.loadOrInit()
	if err != nil {
		return StatusReport{}, err
	}
	plan := PlanBranch(current, e.cfg.ReleasePrefix)

	if err := e.git.CreateBranch(plan.ReleaseBranch); err != nil {
		return StatusReport{}, err
	}
	// The record content may be unchanged on the new branch; the commit is
	// still made to mark the initialization point.
	if err := e.persistAndCommit(current, e.cfg.ReleasePostfix, true); err != nil {
		return StatusReport{}, err
	}
	if err := e.git.Checkout(info.Name); err != nil {
		return StatusReport{}, err
	}
	// The hook may have altered the tree; re-check before the trunk commit.
	if err := EnsureClean(e.git); err != nil {
		return StatusReport{}, err
	}
	if err := e.persistAndCommit(plan.Next, e.cfg.TrunkPostfix, false); err != nil {
		return StatusReport{}, err
	}
	return StatusReport{
		TrunkBranch:   info.Name,
		TrunkPrev:     current.Decorate(e.cfg.TrunkPostfix),
		TrunkNext:     plan.Next.Decorate(e.cfg.TrunkPostfix),
		ReleaseBranch: plan.ReleaseBranch,
		ReleasePrev:   current.Decorate(e.cfg.ReleasePostfix),
		ReleaseNext:   current.Decorate(e.cfg.ReleasePostfix),
	}, nil
}

// Tag creates an annotated tag at the current version on a release branch,
// then advances the record to the next patch.
func (e *Engine) Tag(opts TagOptions) (StatusReport, error) {
	info, err := e.classifyCurrent()
	if err != nil {
		return StatusReport{}, err
	}
	if err := EnsureBranchKind(info, BranchRelease, "tag"); err != nil {
		return StatusReport{}, err
	}
	if err := EnsureClean(e.git); err != nil {
		return StatusReport{}, err
	}
	current, err := e.loadOrInit()
	if err != nil {
		return StatusReport{}, err
	}
	tagName := current.String()
	exists, err := e.git.TagExists(tagName)
	if err != nil {
		return StatusReport{}, err
	}
	if exists && !opts.Force {
		return StatusReport{}, fmt.Errorf("%w: %s (use --force to replace)", ErrTagExists, tagName)
	}
	message := opts.Message
	if message == "" {
		message = tagName
	}
	if err := e.git.Tag(tagName, message, opts.Force, opts.Extra...); err != nil {
		return StatusReport{}, err
	}
	plan := PlanTag(current)
	if err := e.persistAndCommit(plan.Next, e.cfg.ReleasePostfix, false); err != nil {
		return StatusReport{}, err
	}
	return StatusReport{
		ReleaseBranch: info.Name,
		ReleasePrev:   current.Decorate(e.cfg.ReleasePostfix),
		ReleaseNext:   plan.Next.Decorate(e.cfg.ReleasePostfix),
	}, nil
}
