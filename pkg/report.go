package relcut

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StatusReport is the transient before/after snapshot emitted once per
// operation. Versions are decorated display strings; empty cells mean the
// column does not apply to the operation.
type StatusReport struct {
	TrunkBranch   string
	TrunkPrev     string
	TrunkNext     string
	ReleaseBranch string
	ReleasePrev   string
	ReleaseNext   string
}

// Render writes the report as a table comparing trunk and release branch
// versions side by side.
func (r StatusReport) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Branch", "Previous", "Next"})
	if r.TrunkBranch != "" {
		t.AppendRow(table.Row{r.TrunkBranch, r.TrunkPrev, r.TrunkNext})
	}
	if r.ReleaseBranch != "" {
		t.AppendRow(table.Row{r.ReleaseBranch, r.ReleasePrev, r.ReleaseNext})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
