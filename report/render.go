package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"github.com/testmotools/go-testmo/testmo"
)

// statusColors: green/red for verdicts, yellow for retest, grey for
// blocked, cyan for skipped; untested stays plain.
var statusColors = map[testmo.Status]*color.Color{
	testmo.Passed:  color.New(color.FgGreen),
	testmo.Failed:  color.New(color.FgRed),
	testmo.Retest:  color.New(color.FgYellow),
	testmo.Blocked: color.New(color.FgHiBlack),
	testmo.Skipped: color.New(color.FgCyan),
}

func statusCell(s testmo.Status, colored bool) string {
	if c, ok := statusColors[s]; colored && ok {
		return c.Sprint(s.String())
	}
	return s.String()
}

// colorable reports whether w is a terminal. Non-file writers never
// get escape sequences.
func colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Render writes rows as a table followed by a stats summary line.
// Status cells are colored when w is a tty, unless color output is
// globally disabled.
func Render(w io.Writer, rows []Row, stats Stats) {
	colored := colorable(w)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Case ID", "Case", "Folder", "State", "Run", "Status"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.CaseID, r.Case, r.Folder, r.State, r.Run, statusCell(r.Status, colored)})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
	fmt.Fprintln(w, stats.Summary())
}

// RenderProjects writes a project choice table.
func RenderProjects(w io.Writer, projects []testmo.Project) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Name"})
	for _, p := range projects {
		t.AppendRow(table.Row{p.ID, p.Name})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
