package report

import (
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Status is the normalized outcome of a single test.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusError   Status = "error"
	StatusSkipped Status = "skipped"
)

// TestRecord is one flattened, renderable test result.
type TestRecord struct {
	// Suite is the suite title (JSON reports) or the test class (XML reports).
	Suite string `json:"suite" yaml:"suite"`
	Name  string `json:"name" yaml:"name"`

	// State is the outcome literal as found in the source report.
	State  string `json:"state" yaml:"state"`
	Status Status `json:"status" yaml:"status"`

	// Duration is kept as written in the source: milliseconds for
	// mochawesome, seconds for surefire.
	Duration string `json:"duration" yaml:"duration"`
	Message  string `json:"message,omitempty" yaml:"message,omitempty"`
}

// RunSummary holds the counters shown in a report header. The counters are
// copied or summed from the source report, never recomputed from records.
type RunSummary struct {
	Total    int     `json:"total" yaml:"total"`
	Passed   int     `json:"passed" yaml:"passed"`
	Failed   int     `json:"failed" yaml:"failed"`
	Errors   int     `json:"errors" yaml:"errors"`
	Skipped  int     `json:"skipped" yaml:"skipped"`
	Duration float64 `json:"duration" yaml:"duration"`
}

// Consistent reports whether Total equals the sum of the outcome counters.
func (s RunSummary) Consistent() bool {
	return s.Total == s.Passed+s.Failed+s.Errors+s.Skipped
}

// DurationString formats Duration without trailing zeros.
func (s RunSummary) DurationString() string {
	return strconv.FormatFloat(s.Duration, 'f', -1, 64)
}

// CheckConsistency logs a warning when the source counters do not add up.
// The summary is reported as-is either way.
func CheckConsistency(name string, s RunSummary) {
	if s.Consistent() {
		return
	}
	log.WithFields(log.Fields{
		"report":  name,
		"total":   s.Total,
		"passed":  s.Passed,
		"failed":  s.Failed,
		"errors":  s.Errors,
		"skipped": s.Skipped,
	}).Warn("summary counters do not add up to the total")
}
