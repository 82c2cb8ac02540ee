// Package main implements the relcut CLI tool.
//
// relcut automates a branch-and-tag release workflow on top of git. Each
// branch carries a version record file (default "version.properties")
// holding the current major.minor.patch version. Three commands move the
// workflow forward:
//
//	relcut set-version [<version>]
//
// On the trunk branch, records an explicit version, or prompts with the
// current version's minor bumped as the default, then commits the record.
//
//	relcut branch
//
// On the trunk branch, cuts a release branch named after the current
// major.minor (e.g. "release/2.7"), initializes it to the current version
// unchanged, switches back to trunk, and advances the trunk record to the
// next minor.
//
//	relcut tag [-f] [-m <text>] [-- <git tag options>]
//
// On a release branch, creates an annotated tag at the current version and
// advances the record to the next patch. --force replaces an existing tag
// of the same name.
//
// Every command accepts trailing repository paths (or a --manifest YAML
// file) to run against many repositories in order; failures are reported
// per repository and do not stop the run. --yes accepts all defaults
// without prompting, and --parallel enables bounded concurrent execution in
// that mode.
//
// Configuration is read per repository from git config keys (relcut.trunk,
// relcut.releaseprefix, relcut.trunkpostfix, relcut.releasepostfix,
// relcut.recordfile, relcut.hook, relcut.initialversion) over hard-coded
// defaults, with per-run flag overrides.
//
// An optional hook executable, invoked as "<hook> <version> <postfix>"
// after each version computation, can propagate the version into other
// version-bearing files; its changes are included in the following commit.
//
// For API documentation see the pkg package.
package main
