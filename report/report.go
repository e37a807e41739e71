// Package report turns fetched run and result trees into a tabular
// test overview: rows, statistics, named row filters, and terminal
// rendering.
package report

import (
	"fmt"
	"strings"

	"github.com/testmotools/go-testmo/cursor"
	"github.com/testmotools/go-testmo/ir"
	"github.com/testmotools/go-testmo/testmo"
)

// Row is one test case verdict in one run.
type Row struct {
	CaseID int64
	Case   string
	Folder string
	State  string
	Run    string
	Status testmo.Status

	// Fields carries the remaining string fields of the result entry,
	// e.g. custom case fields like Safety.
	Fields map[string]string
}

// Rows extracts case rows from a run's result tree. Result entries are
// the mappings carrying a status_id; the walk prunes below each entry
// since results do not nest. Entries whose folder was deleted are
// dropped.
func Rows(runName string, results *ir.Node) ([]Row, error) {
	var rows []Row
	err := cursor.New(results).Visit(func(c *cursor.Cursor, entering bool) (cursor.Signal, error) {
		if !entering || !c.IsMapping() {
			return cursor.Continue, nil
		}
		n := c.Node()
		statusID := n.Get("status_id")
		if statusID == nil || statusID.Int64 == nil {
			return cursor.Continue, nil
		}
		status, ok := testmo.StatusFromCode(*statusID.Int64)
		if !ok {
			return cursor.Prune, fmt.Errorf("result at %q: unknown status code %d", c.Path(), *statusID.Int64)
		}
		row := Row{
			Run:    runName,
			Status: status,
			Fields: map[string]string{},
		}
		for i, key := range n.Keys {
			v := n.Values[i]
			switch key {
			case "id", "case_id", "test_id":
				if v.Int64 != nil && row.CaseID == 0 {
					row.CaseID = *v.Int64
				}
			case "name", "case":
				if v.Type == ir.StringType && row.Case == "" {
					row.Case = v.String
				}
			case "folder":
				if v.Type == ir.StringType {
					row.Folder = v.String
				}
			case "state":
				if v.Type == ir.StringType {
					row.State = v.String
				}
			case "status_id":
			default:
				if v.Type == ir.StringType {
					row.Fields[key] = v.String
				}
			}
		}
		if row.Case == "" {
			row.Case = fmt.Sprintf("case %d", row.CaseID)
		}
		if !strings.HasPrefix(row.Folder, "(Deleted)") {
			rows = append(rows, row)
		}
		// a result entry holds no further result entries
		return cursor.Prune, nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RunName extracts the display name of a run entry.
func RunName(run *ir.Node) string {
	if name := run.Get("name"); name != nil && name.Type == ir.StringType {
		return name.String
	}
	if id := run.Get("id"); id != nil && id.Int64 != nil {
		return fmt.Sprintf("run %d", *id.Int64)
	}
	return "run"
}

// RunIsActive reports whether a run entry is started and not closed.
func RunIsActive(run *ir.Node) bool {
	started := run.Get("is_started")
	closed := run.Get("is_closed")
	return started != nil && started.Type == ir.BoolType && started.Bool &&
		!(closed != nil && closed.Type == ir.BoolType && closed.Bool)
}

// RunID extracts the id of a run entry.
func RunID(run *ir.Node) (int64, error) {
	id := run.Get("id")
	if id == nil || id.Int64 == nil {
		return 0, fmt.Errorf("run entry has no id")
	}
	return *id.Int64, nil
}
