// Package surefire renders a directory of Surefire XML reports as a static
// HTML table. Files are processed independently: a malformed file is logged
// and left out, and a report is always written.
package surefire

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/leovegas/reportgen/internal/metrics"
	"github.com/leovegas/reportgen/internal/report"
	"github.com/leovegas/reportgen/pkg/api"
)

const (
	ReportName    = "surefire"
	DefaultInput  = "target/surefire-reports"
	DefaultOutput = "target/site/surefire-report.html"

	// FilePattern matches the per-class report files.
	FilePattern = "TEST-*.xml"

	colorPassed  = "green"
	colorSkipped = "orange"
	colorFailed  = "red"
)

// LoadResult is the outcome of loading one report file. Exactly one of
// Suite and Err is set.
type LoadResult struct {
	Path  string
	Suite *api.SurefireSuite
	Err   error
}

// Files lists the report files of dir in lexical order. Compressed copies
// (TEST-*.xml.xz) are included. A missing directory has no files.
func Files(dir string) ([]string, error) {
	files := []string{}
	for _, pattern := range []string{FilePattern, FilePattern + ".xz"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid report pattern %s", pattern)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

// Load parses every report file found in dir.
func Load(dir string) []LoadResult {
	files, err := Files(dir)
	if err != nil {
		log.Warnf("Unable to list reports in %s: %v", dir, err)
		return nil
	}
	if len(files) == 0 {
		log.Debugf("no %s files found in %s", FilePattern, dir)
	}

	results := make([]LoadResult, 0, len(files))
	for _, path := range files {
		suite, err := loadFile(path)
		if err != nil {
			log.Warnf("Failed to parse %s: %v", path, err)
			results = append(results, LoadResult{Path: path, Err: err})
			continue
		}
		results = append(results, LoadResult{Path: path, Suite: suite})
	}
	return results
}

func loadFile(path string) (*api.SurefireSuite, error) {
	file, err := report.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return api.ParseSurefire(file)
}

// Aggregate builds records from every loaded suite. Summary counters are the
// sum of each file's root attributes; files that failed to load are skipped.
func Aggregate(results []LoadResult) ([]report.TestRecord, report.RunSummary) {
	records := []report.TestRecord{}
	summary := report.RunSummary{}
	for _, res := range results {
		if res.Err != nil || res.Suite == nil {
			continue
		}
		s := res.Suite
		summary.Total += s.Tests
		summary.Failed += s.Failures
		summary.Errors += s.Errors
		summary.Skipped += s.Skipped
		summary.Duration += s.Time
		if passed := s.Tests - s.Failures - s.Errors - s.Skipped; passed > 0 {
			summary.Passed += passed
		}

		for i := range s.TestCases {
			records = append(records, newRecord(&s.TestCases[i]))
		}
	}
	return records, summary
}

func newRecord(tc *api.SurefireTestCase) report.TestRecord {
	outcome, result := tc.Outcome()
	message := ""
	if result != nil {
		message = result.Detail()
	}
	return report.TestRecord{
		Suite:    tc.ClassName,
		Name:     tc.Name,
		State:    string(outcome),
		Status:   status(outcome),
		Duration: tc.Duration(),
		Message:  message,
	}
}

func status(outcome api.SurefireOutcome) report.Status {
	switch outcome {
	case api.SurefireOutcomePassed:
		return report.StatusPassed
	case api.SurefireOutcomeSkipped:
		return report.StatusSkipped
	case api.SurefireOutcomeError:
		return report.StatusError
	}
	return report.StatusFailed
}

// Color returns the status cell color of a record state.
func Color(state string) string {
	switch api.SurefireOutcome(state) {
	case api.SurefireOutcomePassed:
		return colorPassed
	case api.SurefireOutcomeSkipped:
		return colorSkipped
	}
	return colorFailed
}

type recordView struct {
	report.TestRecord
	Color string
}

type pageView struct {
	Tests    int
	Failures int
	Errors   int
	Skipped  int
	Time     string
	Records  []recordView
}

// Render builds the HTML table for the records and summary.
func Render(records []report.TestRecord, summary report.RunSummary) ([]byte, error) {
	page := pageView{
		Tests:    summary.Total,
		Failures: summary.Failed,
		Errors:   summary.Errors,
		Skipped:  summary.Skipped,
		Time:     fmt.Sprintf("%.2f", summary.Duration),
		Records:  make([]recordView, 0, len(records)),
	}
	for _, r := range records {
		page.Records = append(page.Records, recordView{TestRecord: r, Color: Color(r.State)})
	}
	return report.RenderTemplate(report.TemplateSurefire, page)
}

// Generate runs the whole pipeline. Unreadable input files never fail the
// run; only rendering or writing the output does.
func Generate(opts *report.Options) error {
	timers := metrics.NewTimers()
	timers.Set("load")
	results := Load(opts.Input)

	timers.Set("aggregate")
	records, summary := Aggregate(results)
	report.CheckConsistency(ReportName, summary)

	timers.Set("render")
	page, err := Render(records, summary)
	if err != nil {
		return err
	}

	timers.Set("write")
	if err := report.WriteFile(opts.Output, page); err != nil {
		return err
	}
	timers.Stop()
	log.WithFields(timers.Fields()).Debugf("%s report generated from %d files with %d tests", ReportName, len(results), len(records))

	report.Confirm(opts.Writer(), opts.Output)
	return opts.Finish(ReportName, records, summary)
}
