package relcut

// Plan is the computed next state for an operation: the version the current
// branch's record advances to and, for trunk operations that cut a branch,
// the release branch to create. Plans are pure data; nothing is mutated
// until the engine executes them.
type Plan struct {
	Next          Version
	ReleaseBranch string
}

// PlanBranch computes the state after cutting a release branch from trunk.
// The release branch captures the current version unchanged; the trunk
// record advances to the next minor.
func PlanBranch(current Version, releasePrefix string) Plan {
	return Plan{
		Next:          current.NextMinor(),
		ReleaseBranch: ReleaseBranchName(releasePrefix, current),
	}
}

// PlanTag computes the state after tagging on a release branch. The tag uses
// the current version unchanged; the record advances to the next patch.
func PlanTag(current Version) Plan {
	return Plan{Next: current.NextPatch()}
}

// PlanSetVersion computes the state for an explicit or defaulted version
// change on trunk. An empty explicit value defaults to the next minor,
// mirroring the trunk-side bump of PlanBranch; callers confirm the default
// before executing.
func PlanSetVersion(current Version, explicit string) (Plan, error) {
	if explicit == "" {
		return Plan{Next: current.NextMinor()}, nil
	}
	next, err := ParseVersion(explicit)
	if err != nil {
		return Plan{}, err
	}
	return Plan{Next: next}, nil
}
