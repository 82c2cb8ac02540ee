// Package main implements the relcut CLI: a branch-and-tag release workflow
// for git repositories tracking a semantic version per branch.
package main

import (
	"fmt"
	"io"
	"os"

	relcut "github.com/relcut/relcut/pkg"
	flag "github.com/spf13/pflag"
)

func usage() {
	msg := `Usage:
  relcut <command> [options] [args] [<repo>...]

Commands:
  set-version [<version>]   Record an explicit or confirmed-default version (trunk only)
  branch                    Cut a release branch and advance trunk to the next minor (trunk only)
  tag                       Tag the current version and advance to the next patch (release branch only)
  version                   Show CLI version and exit

Trailing repository paths (or --manifest) run the command against each
repository in order, reporting per repository and continuing past failures.
With no paths the command runs against the -C directory.

Examples:
  relcut set-version 1.4.0
  relcut branch
  relcut tag -m "maintenance release"
  relcut tag --force -- --local-user=release-key
  relcut branch --yes --manifest relcut.yml

Options (per command):
  -C, --chdir <dir>          Repository to operate on when no paths are given (default ".")
  -y, --yes                  Accept defaults without prompting
      --manifest <file>      YAML manifest listing repositories
      --parallel <n>         Concurrent repositories in batch mode (requires --yes)
      --trunk <name>         Override trunk branch name
      --release-prefix <p>   Override release branch prefix
      --record-file <path>   Override version record path
      --hook <path>          Override version hook executable
      --initial <version>    Override initial version for record creation
  -f, --force                tag: replace an existing tag of the same name
  -m, --message <text>       tag: annotation text (defaults to the version)

Arguments after -- are passed to the underlying git tag invocation.
`
	fmt.Fprint(os.Stderr, msg)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "-h", "--help", "help":
		usage()
	case "-v", "--version", "version":
		fmt.Println("relcut version", Version)
	case "set-version", "branch", "tag":
		if err := runCommand(os.Args[1], os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

// options collects the flags shared by every command plus the tag extras.
type options struct {
	chdir         string
	yes           bool
	manifest      string
	parallel      int
	trunk         string
	releasePrefix string
	recordFile    string
	hook          string
	initial       string
	force         bool
	message       string
}

func newFlagSet(name string, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = usage
	fs.StringVarP(&opts.chdir, "chdir", "C", ".", "Repository to operate on when no paths are given")
	fs.BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults without prompting")
	fs.StringVar(&opts.manifest, "manifest", "", "YAML manifest listing repositories")
	fs.IntVar(&opts.parallel, "parallel", 1, "Concurrent repositories in batch mode (requires --yes)")
	fs.StringVar(&opts.trunk, "trunk", "", "Override trunk branch name")
	fs.StringVar(&opts.releasePrefix, "release-prefix", "", "Override release branch prefix")
	fs.StringVar(&opts.recordFile, "record-file", "", "Override version record path")
	fs.StringVar(&opts.hook, "hook", "", "Override version hook executable")
	fs.StringVar(&opts.initial, "initial", "", "Override initial version for record creation")
	if name == "tag" {
		fs.BoolVarP(&opts.force, "force", "f", false, "Replace an existing tag of the same name")
		fs.StringVarP(&opts.message, "message", "m", "", "Tag annotation text (defaults to the version)")
	}
	return fs
}

// applyOverrides layers non-empty flag values over the resolved repository
// configuration.
func applyOverrides(cfg *relcut.Config, opts options) {
	if opts.trunk != "" {
		cfg.TrunkBranch = opts.trunk
	}
	if opts.releasePrefix != "" {
		cfg.ReleasePrefix = opts.releasePrefix
	}
	if opts.recordFile != "" {
		cfg.RecordFile = opts.recordFile
	}
	if opts.hook != "" {
		cfg.HookPath = opts.hook
	}
	if opts.initial != "" {
		cfg.InitialVersion = opts.initial
	}
}

// splitArgs separates positional arguments from the args after --, and for
// set-version peels off a leading explicit version.
func splitArgs(name string, fs *flag.FlagSet) (explicit string, paths, extra []string) {
	positional := fs.Args()
	if i := fs.ArgsLenAtDash(); i >= 0 {
		extra = positional[i:]
		positional = positional[:i]
	}
	if name == "set-version" && len(positional) > 0 {
		if _, err := relcut.ParseVersion(positional[0]); err == nil {
			explicit = positional[0]
			positional = positional[1:]
		}
	}
	return explicit, positional, extra
}

func runCommand(name string, args []string) error {
	var opts options
	fs := newFlagSet(name, &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}
	explicit, paths, extra := splitArgs(name, fs)

	if opts.manifest != "" {
		m, err := relcut.LoadManifest(opts.manifest)
		if err != nil {
			return err
		}
		paths = append(paths, m.Repositories...)
	}
	if opts.parallel > 1 && !opts.yes {
		return fmt.Errorf("--parallel requires --yes: interactive prompts cannot run concurrently")
	}

	runOne := func(path string, out io.Writer) (relcut.StatusReport, error) {
		g, err := relcut.OpenGit(path)
		if err != nil {
			return relcut.StatusReport{}, err
		}
		cfg := relcut.LoadConfig(g)
		applyOverrides(&cfg, opts)
		var confirm relcut.Confirmer = relcut.NewTerminalConfirmer()
		if opts.yes {
			confirm = relcut.AutoConfirmer{}
		}
		eng := relcut.NewEngine(g, cfg, confirm)

		var report relcut.StatusReport
		switch name {
		case "set-version":
			report, err = eng.SetVersion(explicit)
		case "branch":
			report, err = eng.Branch()
		case "tag":
			report, err = eng.Tag(relcut.TagOptions{Force: opts.force, Message: opts.message, Extra: extra})
		}
		if err != nil {
			return relcut.StatusReport{}, err
		}
		report.Render(out)
		return report, nil
	}

	if len(paths) == 0 {
		_, err := runOne(opts.chdir, os.Stdout)
		return err
	}

	orch := &relcut.Orchestrator{
		Out:      os.Stdout,
		Parallel: opts.parallel,
		Progress: opts.parallel > 1,
		Label:    name,
	}
	outcomes := orch.Run(paths, runOne)
	if relcut.Failed(outcomes) {
		failed := 0
		for _, o := range outcomes {
			if o.Err != nil {
				failed++
			}
		}
		return fmt.Errorf("%d of %d repositories failed", failed, len(outcomes))
	}
	return nil
}
