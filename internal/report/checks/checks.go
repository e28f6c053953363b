// Package checks summarizes assertion checks collected during an e2e run
// and optionally gates the job on the pass percentage.
package checks

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/leovegas/reportgen/internal/exitcode"
	"github.com/leovegas/reportgen/internal/report"
	"github.com/leovegas/reportgen/pkg/api"
)

const (
	ReportName        = "checks"
	DefaultInput      = "report/checks.json"
	DefaultJSONOutput = "report/checks-summary.json"
	DefaultHTMLOutput = "report/checks-summary.html"

	timeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Check is the assertion counter of a single check id.
type Check struct {
	Pass  int `json:"pass"`
	Total int `json:"total"`
}

// Document is the checks.json input.
type Document struct {
	Checks map[string]Check `json:"checks"`
}

// Summary is written to checks-summary.json.
type Summary struct {
	GeneratedAt      string  `json:"generatedAt"`
	ChecksFile       string  `json:"checksFile"`
	TotalChecks      int     `json:"totalChecks"`
	TotalAssertions  int     `json:"totalAssertions"`
	PassedAssertions int     `json:"passedAssertions"`
	PassPercent      float64 `json:"passPercent"`
}

// Options configures a checks run.
type Options struct {
	Input      string
	JSONOutput string
	HTMLOutput string

	// Threshold fails the run when the pass percentage is below it.
	Threshold *float64

	Stdout io.Writer
	Now    func() time.Time
}

// ParseThreshold reads a threshold value; empty or non-numeric values
// disable the gate.
func ParseThreshold(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Load reads the checks document. Any failure means there is nothing to summarize.
func Load(path string) (*Document, error) {
	file, err := report.OpenInput(path)
	if err != nil {
		return nil, exitcode.Newf(exitcode.NoInput, "No checks summary found at %s", path)
	}
	defer file.Close()

	doc := &Document{}
	if err := api.DecodeJSONDocument(file, doc); err != nil {
		log.Debugf("unable to decode %s: %v", path, err)
		return nil, exitcode.Newf(exitcode.NoInput, "No checks summary found at %s", path)
	}
	if doc.Checks == nil {
		doc.Checks = map[string]Check{}
	}
	return doc, nil
}

// Aggregate sums the assertion counters of every check.
func Aggregate(doc *Document) Summary {
	s := Summary{TotalChecks: len(doc.Checks)}
	for _, c := range doc.Checks {
		s.PassedAssertions += c.Pass
		s.TotalAssertions += c.Total
	}
	if s.TotalAssertions > 0 {
		s.PassPercent = math.Round(float64(s.PassedAssertions)/float64(s.TotalAssertions)*10000) / 100
	}
	return s
}

type pageView struct {
	Summary
	Percent    string
	ChecksJSON string
}

// Render builds the HTML page of the summary, listing the raw checks.
func Render(s Summary, doc *Document) ([]byte, error) {
	checksJSON, err := json.MarshalIndent(doc.Checks, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode checks")
	}
	return report.RenderTemplate(report.TemplateChecks, pageView{
		Summary:    s,
		Percent:    strconv.FormatFloat(s.PassPercent, 'f', -1, 64),
		ChecksJSON: string(checksJSON),
	})
}

// Generate writes the JSON and HTML summaries and applies the threshold gate.
func Generate(opts *Options) error {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	doc, err := Load(opts.Input)
	if err != nil {
		return err
	}

	summary := Aggregate(doc)
	summary.GeneratedAt = now().UTC().Format(timeLayout)
	summary.ChecksFile = opts.Input
	if abs, err := filepath.Abs(opts.Input); err == nil {
		summary.ChecksFile = abs
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode checks summary")
	}
	if err := report.WriteFile(opts.JSONOutput, data); err != nil {
		return err
	}

	page, err := Render(summary, doc)
	if err != nil {
		return err
	}
	if err := report.WriteFile(opts.HTMLOutput, page); err != nil {
		return err
	}

	pass := strconv.FormatFloat(summary.PassPercent, 'f', -1, 64)
	fmt.Fprintln(stdout, "Wrote", opts.JSONOutput, "and", opts.HTMLOutput)
	fmt.Fprintln(stdout, "Pass %:", pass)

	if opts.Threshold != nil && summary.PassPercent < *opts.Threshold {
		return exitcode.Newf(exitcode.GateFailed, "Pass percent %s%% < threshold %s%%, failing job.",
			pass, strconv.FormatFloat(*opts.Threshold, 'f', -1, 64))
	}
	return nil
}
