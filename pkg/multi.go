package relcut

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/sync/errgroup"
)

// RepoOutcome is the result of one operation against one repository.
type RepoOutcome struct {
	Path   string
	Report StatusReport
	Err    error
}

// Orchestrator fans one operation out across repositories. Repositories are
// independent units of work: a failure is reported and the run continues
// with the next path. Execution is sequential unless Parallel is raised,
// which is only safe for non-interactive runs.
type Orchestrator struct {
	Out      io.Writer
	Parallel int
	// Progress enables a spinner while a parallel batch runs. It has no
	// effect on sequential runs, whose operations may prompt.
	Progress bool
	// Label names the operation in progress output.
	Label string
}

// Run executes op against every path in order and returns one outcome per
// path, in input order. Sequential runs interleave headers and operation
// output as they happen; parallel runs buffer per-repository output and
// print it once all work is done, so reports never interleave.
func (o *Orchestrator) Run(paths []string, op func(path string, out io.Writer) (StatusReport, error)) []RepoOutcome {
	if o.Parallel > 1 && len(paths) > 1 {
		return o.runParallel(paths, op)
	}
	outcomes := make([]RepoOutcome, 0, len(paths))
	for _, path := range paths {
		fmt.Fprintf(o.Out, "==> %s\n", path)
		report, err := op(path, o.Out)
		if err != nil {
			fmt.Fprintf(o.Out, "error: %v\n", err)
		}
		outcomes = append(outcomes, RepoOutcome{Path: path, Report: report, Err: err})
	}
	return outcomes
}

func (o *Orchestrator) runParallel(paths []string, op func(path string, out io.Writer) (StatusReport, error)) []RepoOutcome {
	if o.Progress {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = fmt.Sprintf(" Running %s across %d repositories...", o.Label, len(paths))
		s.Start()
		defer s.Stop()
	}

	outcomes := make([]RepoOutcome, len(paths))
	buffers := make([]bytes.Buffer, len(paths))
	var g errgroup.Group
	g.SetLimit(o.Parallel)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			report, err := op(path, &buffers[i])
			outcomes[i] = RepoOutcome{Path: path, Report: report, Err: err}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // per-repo errors live in outcomes

	for i, outcome := range outcomes {
		fmt.Fprintf(o.Out, "==> %s\n", outcome.Path)
		io.Copy(o.Out, &buffers[i]) //nolint:errcheck
		if outcome.Err != nil {
			fmt.Fprintf(o.Out, "error: %v\n", outcome.Err)
		}
	}
	return outcomes
}

// Failed reports whether any outcome carries an error.
func Failed(outcomes []RepoOutcome) bool {
	for _, o := range outcomes {
		if o.Err != nil {
			return true
		}
	}
	return false
}
