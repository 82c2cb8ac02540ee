package relcut

import (
	"fmt"
	"regexp"
	"strconv"
)

// BranchKind tags the classification of a branch name.
type BranchKind int

const (
	// BranchUnknown is any branch that is neither the trunk nor a release
	// branch. No operation runs on unknown branches.
	BranchUnknown BranchKind = iota
	// BranchTrunk is the single long-lived integration branch.
	BranchTrunk
	// BranchRelease is a per-minor-version release branch.
	BranchRelease
)

// String returns a human-readable kind name for diagnostics.
func (k BranchKind) String() string {
	switch k {
	case BranchTrunk:
		return "trunk"
	case BranchRelease:
		return "release branch"
	default:
		return "unrecognized branch"
	}
}

// BranchInfo is the result of classifying a branch name. Major and Minor are
// populated only for BranchRelease.
type BranchInfo struct {
	Kind  BranchKind
	Name  string
	Major int
	Minor int
}

// Classify maps a branch name to its kind. Exact equality with trunkName
// yields BranchTrunk; a name of the form "<releasePrefix><major>.<minor>"
// yields BranchRelease; everything else is BranchUnknown.
func Classify(name, trunkName, releasePrefix string) BranchInfo {
	if name == trunkName {
		return BranchInfo{Kind: BranchTrunk, Name: name}
	}
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(releasePrefix) + `(\d+)\.(\d+)$`)
	m := re.FindStringSubmatch(name)
	if m == nil {
		return BranchInfo{Kind: BranchUnknown, Name: name}
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return BranchInfo{Kind: BranchUnknown, Name: name}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return BranchInfo{Kind: BranchUnknown, Name: name}
	}
	return BranchInfo{Kind: BranchRelease, Name: name, Major: major, Minor: minor}
}

// ReleaseBranchName derives the release branch name for a version: the
// prefix followed by major.minor at the moment of branching. The patch
// component never appears in branch names.
func ReleaseBranchName(releasePrefix string, v Version) string {
	return fmt.Sprintf("%s%d.%d", releasePrefix, v.Major, v.Minor)
}
