package api

import (
	"encoding/json"
	"io"
)

// MochawesomeReport is the JSON document written by the mochawesome reporter.
// Every field is optional.
type MochawesomeReport struct {
	Stats   *MochawesomeStats   `json:"stats,omitempty"`
	Results []MochawesomeResult `json:"results,omitempty"`
}

type MochawesomeStats struct {
	Suites   json.Number `json:"suites,omitempty"`
	Tests    json.Number `json:"tests,omitempty"`
	Passes   json.Number `json:"passes,omitempty"`
	Pending  json.Number `json:"pending,omitempty"`
	Failures json.Number `json:"failures,omitempty"`
	Duration json.Number `json:"duration,omitempty"`
}

// MochawesomeResult is one spec file run.
type MochawesomeResult struct {
	Title  *string            `json:"title,omitempty"`
	File   *string            `json:"file,omitempty"`
	Suites []MochawesomeSuite `json:"suites,omitempty"`
}

type MochawesomeSuite struct {
	Title *string           `json:"title,omitempty"`
	Tests []MochawesomeTest `json:"tests,omitempty"`
}

type MochawesomeTest struct {
	Title     *string         `json:"title,omitempty"`
	FullTitle *string         `json:"fullTitle,omitempty"`
	State     *string         `json:"state,omitempty"`
	Duration  json.Number     `json:"duration,omitempty"`
	Err       *MochawesomeErr `json:"err,omitempty"`
}

type MochawesomeErr struct {
	Message *string `json:"message,omitempty"`
	Estack  *string `json:"estack,omitempty"`
	Diff    *string `json:"diff,omitempty"`
}

// ParseMochawesome decodes a mochawesome JSON document.
func ParseMochawesome(r io.Reader) (*MochawesomeReport, error) {
	report := &MochawesomeReport{}
	if err := DecodeJSONDocument(r, report); err != nil {
		return nil, err
	}
	return report, nil
}
