package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/testmotools/go-testmo/testmo"
)

// Filter narrows the set of rows in an overview. Filters are looked up
// by name from the command line.
type Filter interface {
	Name() string
	Description() string
	Apply([]Row) []Row
}

var registry = map[string]Filter{}

func Register(f Filter) {
	registry[f.Name()] = f
}

func Get(name string) (Filter, bool) {
	f, ok := registry[name]
	return f, ok
}

// All returns the registered filters sorted by name.
func All() []Filter {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	res := make([]Filter, len(names))
	for i, name := range names {
		res[i] = registry[name]
	}
	return res
}

// Select resolves a comma or space separated list of filter names.
func Select(description string) ([]Filter, error) {
	var res []Filter
	for _, name := range strings.FieldsFunc(description, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		f, ok := Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown filter %q", name)
		}
		res = append(res, f)
	}
	return res, nil
}

type rowFilter struct {
	name        string
	description string
	keep        func(Row) bool
}

func (f rowFilter) Name() string        { return f.name }
func (f rowFilter) Description() string { return f.description }

func (f rowFilter) Apply(rows []Row) []Row {
	res := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.keep(r) {
			res = append(res, r)
		}
	}
	return res
}

func init() {
	Register(rowFilter{
		name:        "none",
		description: "No filter",
		keep:        func(Row) bool { return true },
	})
	Register(rowFilter{
		name:        "active",
		description: "State = Active",
		keep:        func(r Row) bool { return r.State == "Active" },
	})
	Register(rowFilter{
		name:        "safety",
		description: "Safety = Yes",
		keep: func(r Row) bool {
			v, ok := r.Fields["Safety"]
			// rows without the custom field pass through untouched
			return !ok || v == "Yes"
		},
	})
	Register(rowFilter{
		name:        "not_retired_or_rejected",
		description: "State ≠ Retired,Rejected",
		keep: func(r Row) bool {
			return r.State != "Retired" && r.State != "Rejected"
		},
	})
	Register(rowFilter{
		name:        "passed",
		description: "Status = Passed",
		keep:        func(r Row) bool { return r.Status == testmo.Passed },
	})
	Register(rowFilter{
		name:        "failed",
		description: "Status = Failed",
		keep:        func(r Row) bool { return r.Status == testmo.Failed },
	})
	Register(rowFilter{
		name:        "inconclusive",
		description: "Status = Untested,Retest,Blocked",
		keep:        func(r Row) bool { return r.Status.Inconclusive() },
	})
}
