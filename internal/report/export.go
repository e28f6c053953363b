package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

const sheetName = "Sheet1"

// SummaryDocument is the machine readable companion of an HTML report.
type SummaryDocument struct {
	Report     string        `json:"report" yaml:"report"`
	Output     string        `json:"output" yaml:"output"`
	Summary    RunSummary    `json:"summary" yaml:"summary"`
	Consistent bool          `json:"consistent" yaml:"consistent"`
	Records    int           `json:"records" yaml:"records"`
	Durations  DurationStats `json:"durations" yaml:"durations"`
}

// NewSummaryDocument builds the summary document for a rendered report.
func NewSummaryDocument(name, output string, records []TestRecord, summary RunSummary) *SummaryDocument {
	return &SummaryDocument{
		Report:     name,
		Output:     output,
		Summary:    summary,
		Consistent: summary.Consistent(),
		Records:    len(records),
		Durations:  NewDurationStats(records),
	}
}

// WriteSummaryFile saves the document as YAML when the path ends in .yaml or
// .yml, and as indented JSON otherwise.
func WriteSummaryFile(path string, doc *SummaryDocument) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "unable to encode summary")
	}
	return WriteFile(path, data)
}

// WriteSpreadsheet saves one row per record to an xlsx file.
func WriteSpreadsheet(path string, records []TestRecord) error {
	sheet := excelize.NewFile()
	defer sheet.Close()

	header := []interface{}{"Suite", "Test", "State", "Status", "Duration", "Message"}
	if err := sheet.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "unable to write spreadsheet header")
	}
	for idx, r := range records {
		row := []interface{}{r.Suite, r.Name, r.State, string(r.Status), r.Duration, r.Message}
		if err := sheet.SetSheetRow(sheetName, fmt.Sprintf("A%d", idx+2), &row); err != nil {
			return errors.Wrapf(err, "unable to write spreadsheet row %d", idx+2)
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "unable to create directory %s", dir)
		}
	}
	if err := sheet.SaveAs(path); err != nil {
		return errors.Wrapf(err, "unable to save spreadsheet %s", path)
	}
	return nil
}
