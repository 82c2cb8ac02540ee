package relcut

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

// Version is an immutable major.minor.patch triple. The zero value is 0.0.0.
type Version struct {
	Major int
	Minor int
	Patch int
}

var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ParseVersion parses canonical "major.minor.patch" text. Anything else,
// including "v" prefixes, prerelease suffixes, or signed components, fails
// with ErrInvalidVersion.
func ParseVersion(text string) (Version, error) {
	m := versionPattern.FindStringSubmatch(text)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the canonical "major.minor.patch" form. It round-trips
// through ParseVersion.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// NextMinor returns the version with the minor component bumped and the
// patch component reset to zero.
func (v Version) NextMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}
}

// NextPatch returns the version with the patch component bumped.
func (v Version) NextPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// Compare orders versions lexicographically by (major, minor, patch).
// The result is -1, 0, or +1 following semver precedence.
func (v Version) Compare(o Version) int {
	return semver.Compare("v"+v.String(), "v"+o.String())
}

// Decorate appends a display postfix to the canonical form. The postfix is
// cosmetic and never participates in version arithmetic or persistence.
func (v Version) Decorate(postfix string) string {
	return v.String() + postfix
}
