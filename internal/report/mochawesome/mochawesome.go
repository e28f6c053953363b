// Package mochawesome renders a mochawesome JSON report as a static HTML page.
//
// Loading is all-or-nothing: a missing or malformed input aborts the run and
// nothing is written.
package mochawesome

import (
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"k8s.io/utils/ptr"

	"github.com/leovegas/reportgen/internal/metrics"
	"github.com/leovegas/reportgen/internal/report"
	"github.com/leovegas/reportgen/pkg/api"
)

const (
	ReportName     = "mochawesome"
	DefaultInput   = "cypress/results/mochawesome.json"
	DefaultOutput  = "cypress/results/html/mochawesome-report.html"
	RootSuiteTitle = "Root Suite"

	statePassed = "passed"
	classPassed = "passed"
	classFailed = "failed"
)

// Load reads and decodes the mochawesome JSON document at path.
func Load(path string) (*api.MochawesomeReport, error) {
	file, err := report.OpenInput(path)
	if err != nil {
		log.Errorf("Could not read mochawesome JSON: %v", err)
		return nil, errors.Wrap(err, "could not read mochawesome JSON")
	}
	defer file.Close()

	data, err := api.ParseMochawesome(file)
	if err != nil {
		log.Errorf("Could not read mochawesome JSON: %v", err)
		return nil, errors.Wrapf(err, "could not read mochawesome JSON %s", path)
	}
	return data, nil
}

// Aggregate flattens every suite and test into records. The summary is
// copied from the report stats, not counted from the records.
func Aggregate(data *api.MochawesomeReport) ([]report.TestRecord, report.RunSummary) {
	records := []report.TestRecord{}
	for _, result := range data.Results {
		for _, suite := range result.Suites {
			title := ptr.Deref(suite.Title, "")
			if title == "" {
				title = RootSuiteTitle
			}
			for i := range suite.Tests {
				records = append(records, newRecord(title, &suite.Tests[i]))
			}
		}
	}
	return records, summarize(data.Stats)
}

func newRecord(suite string, t *api.MochawesomeTest) report.TestRecord {
	label := ptr.Deref(t.FullTitle, "")
	if label == "" {
		label = ptr.Deref(t.Title, "")
	}
	state := ptr.Deref(t.State, "")

	duration := t.Duration.String()
	if duration == "" {
		duration = "0"
	}

	message := ""
	if t.Err != nil {
		message = ptr.Deref(t.Err.Message, "")
	}

	return report.TestRecord{
		Suite:    suite,
		Name:     label,
		State:    state,
		Status:   classify(state),
		Duration: duration,
		Message:  message,
	}
}

func classify(state string) report.Status {
	switch state {
	case "passed":
		return report.StatusPassed
	case "pending", "skipped":
		return report.StatusSkipped
	}
	return report.StatusFailed
}

func summarize(stats *api.MochawesomeStats) report.RunSummary {
	if stats == nil {
		return report.RunSummary{}
	}
	return report.RunSummary{
		Total:    toInt(stats.Tests),
		Passed:   toInt(stats.Passes),
		Failed:   toInt(stats.Failures),
		Duration: toFloat(stats.Duration),
	}
}

func toInt(n json.Number) int {
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	return int(toFloat(n))
}

func toFloat(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return f
}

// Class returns the CSS class of a test state. Only the exact "passed"
// literal is rendered as passed.
func Class(state string) string {
	if state == statePassed {
		return classPassed
	}
	return classFailed
}

type recordView struct {
	report.TestRecord
	Class string
}

// Header holds the page header counters as written in the report stats.
type Header struct {
	Tests    string
	Passes   string
	Failures string
	Duration string
}

// NewHeader reads the header counters from stats; absent counters are "0".
func NewHeader(stats *api.MochawesomeStats) Header {
	if stats == nil {
		stats = &api.MochawesomeStats{}
	}
	return Header{
		Tests:    literal(stats.Tests),
		Passes:   literal(stats.Passes),
		Failures: literal(stats.Failures),
		Duration: literal(stats.Duration),
	}
}

func literal(n json.Number) string {
	if n == "" {
		return "0"
	}
	return n.String()
}

type pageView struct {
	Header
	Records []recordView
}

// Render builds the HTML page for the records and header.
func Render(records []report.TestRecord, header Header) ([]byte, error) {
	page := pageView{
		Header:  header,
		Records: make([]recordView, 0, len(records)),
	}
	for _, r := range records {
		page.Records = append(page.Records, recordView{TestRecord: r, Class: Class(r.State)})
	}
	return report.RenderTemplate(report.TemplateMochawesome, page)
}

// Generate runs the whole pipeline: load, aggregate, render and write.
func Generate(opts *report.Options) error {
	timers := metrics.NewTimers()
	timers.Set("load")
	data, err := Load(opts.Input)
	if err != nil {
		return err
	}

	timers.Set("aggregate")
	records, summary := Aggregate(data)
	report.CheckConsistency(ReportName, summary)

	timers.Set("render")
	page, err := Render(records, NewHeader(data.Stats))
	if err != nil {
		return err
	}

	timers.Set("write")
	if err := report.WriteFile(opts.Output, page); err != nil {
		return err
	}
	timers.Stop()
	log.WithFields(timers.Fields()).Debugf("%s report generated with %d tests", ReportName, len(records))

	report.Confirm(opts.Writer(), opts.Output)
	return opts.Finish(ReportName, records, summary)
}
