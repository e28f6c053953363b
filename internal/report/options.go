package report

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Options configures a single pipeline run.
type Options struct {
	// Input is the report file (mochawesome, checks) or directory (surefire).
	Input string
	// Output is the HTML file to write.
	Output string

	// SummaryFile, when set, receives the run summary as JSON or YAML.
	SummaryFile string
	// SpreadsheetFile, when set, receives one xlsx row per test.
	SpreadsheetFile string
	// ShowSummary prints the run summary table after the confirmation line.
	ShowSummary bool

	// Stdout receives the confirmation line, os.Stdout when nil.
	Stdout io.Writer
}

func (o *Options) Writer() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}
	return o.Stdout
}

// Finish writes the optional companions of a rendered report.
func (o *Options) Finish(name string, records []TestRecord, summary RunSummary) error {
	doc := NewSummaryDocument(name, o.Output, records, summary)

	if o.SummaryFile != "" {
		if err := WriteSummaryFile(o.SummaryFile, doc); err != nil {
			return err
		}
		log.Debugf("summary saved to %s", o.SummaryFile)
	}
	if o.SpreadsheetFile != "" {
		if err := WriteSpreadsheet(o.SpreadsheetFile, records); err != nil {
			return err
		}
		log.Debugf("spreadsheet saved to %s", o.SpreadsheetFile)
	}
	if o.ShowSummary {
		ShowSummary(o.Writer(), doc)
	}
	return nil
}
