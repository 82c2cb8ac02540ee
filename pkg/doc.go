// Package relcut implements a branch-and-tag release workflow on top of a
// git repository.
//
// It tracks a semantic version per branch in a small record file, derives
// the next version after each release action, cuts per-minor-version release
// branches from a trunk, and tags release points. The package provides:
//
//   - A Version value type with canonical parse/format and the next-minor /
//     next-patch arithmetic the workflow needs.
//   - A record store that persists the current version as a text file and
//     initializes it on first use through a confirm-or-override callback.
//   - A branch classifier mapping branch names to trunk, release, or
//     unrecognized, from a configured trunk name and release prefix.
//   - A pure policy computing the next version and release branch name for
//     each operation.
//   - A workflow engine sequencing the set-version, branch, and tag
//     operations with precondition checks against an abstract Git
//     collaborator, an optional external version hook, and a closing status
//     report.
//   - An orchestrator fanning one operation out across many repositories,
//     sequentially by default, isolating failures per repository.
//
// The CLI in the repository root wires these together; the package is also
// usable programmatically:
//
//	g, err := relcut.OpenGit(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := relcut.LoadConfig(g)
//	eng := relcut.NewEngine(g, cfg, relcut.AutoConfirmer{})
//	report, err := eng.Branch()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report.Render(os.Stdout)
package relcut
