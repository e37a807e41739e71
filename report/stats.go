package report

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/testmotools/go-testmo/testmo"
)

// Stats counts verdicts: passes, failures, and everything else.
type Stats struct {
	Total  int
	Passed int
	Failed int
	Other  int
}

func (s *Stats) Add(status testmo.Status) {
	s.Total++
	switch status {
	case testmo.Passed:
		s.Passed++
	case testmo.Failed:
		s.Failed++
	default:
		s.Other++
	}
}

// Percent formats a count as a percentage of the total, "--" when
// nothing was counted.
func (s *Stats) Percent(count int) string {
	if s.Total == 0 {
		return "--"
	}
	return fmt.Sprintf("%.2f", 100.0*float64(count)/float64(s.Total))
}

func (s *Stats) Summary() string {
	return fmt.Sprintf("%s results: %d passed (%s%%), %d failed (%s%%), %d other (%s%%)",
		humanize.Comma(int64(s.Total)),
		s.Passed, s.Percent(s.Passed),
		s.Failed, s.Percent(s.Failed),
		s.Other, s.Percent(s.Other))
}

// Tally computes stats over a set of rows.
func Tally(rows []Row) Stats {
	var s Stats
	for _, r := range rows {
		s.Add(r.Status)
	}
	return s
}
