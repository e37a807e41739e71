package testmo

// Status is a Testmo result status code.
type Status int

const (
	Untested Status = iota + 1
	Passed
	Failed
	Retest
	Blocked
	Skipped
)

var statusNames = map[Status]string{
	Untested: "Untested",
	Passed:   "Passed",
	Failed:   "Failed",
	Retest:   "Retest",
	Blocked:  "Blocked",
	Skipped:  "Skipped",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// StatusFromCode maps a status_id field to a Status.
func StatusFromCode(code int64) (Status, bool) {
	s := Status(code)
	_, ok := statusNames[s]
	return s, ok
}

func Statuses() []Status {
	return []Status{Untested, Passed, Failed, Retest, Blocked, Skipped}
}

// Inconclusive reports whether the status leaves the case without a
// verdict.
func (s Status) Inconclusive() bool {
	switch s {
	case Untested, Retest, Blocked:
		return true
	default:
		return false
	}
}
