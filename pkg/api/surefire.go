package api

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Parse the XML data (Surefire TEST-*.xml, one file per test class)
type SurefireOutcome string

const (
	SurefireOutcomePassed  SurefireOutcome = "passed"
	SurefireOutcomeFailure SurefireOutcome = "failure"
	SurefireOutcomeError   SurefireOutcome = "error"
	SurefireOutcomeSkipped SurefireOutcome = "skipped"
)

// SurefireResult is one of the outcome children of a testcase: failure, error or skipped.
type SurefireResult struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// Detail returns the message attribute, falling back to the element text.
func (r *SurefireResult) Detail() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Text
}

type SurefireTestCase struct {
	Name      string           `xml:"name,attr"`
	ClassName string           `xml:"classname,attr"`
	Time      *string          `xml:"time,attr"`
	Failures  []SurefireResult `xml:"failure"`
	Errors    []SurefireResult `xml:"error"`
	Skipped   []SurefireResult `xml:"skipped"`
	SystemOut string           `xml:"system-out"`
}

// Outcome resolves the testcase result. A failure child wins over error,
// and error wins over skipped. The returned result is nil for passed tests.
func (tc *SurefireTestCase) Outcome() (SurefireOutcome, *SurefireResult) {
	switch {
	case len(tc.Failures) > 0:
		return SurefireOutcomeFailure, &tc.Failures[0]
	case len(tc.Errors) > 0:
		return SurefireOutcomeError, &tc.Errors[0]
	case len(tc.Skipped) > 0:
		return SurefireOutcomeSkipped, &tc.Skipped[0]
	}
	return SurefireOutcomePassed, nil
}

// Duration returns the time attribute as written in the report, "0" when absent.
func (tc *SurefireTestCase) Duration() string {
	if tc.Time == nil {
		return "0"
	}
	return *tc.Time
}

// SurefireSuite holds the root element counters and every testcase found
// below it, at any depth.
type SurefireSuite struct {
	Root      string
	Name      string
	Tests     int
	Failures  int
	Errors    int
	Skipped   int
	Time      float64
	TestCases []SurefireTestCase
}

// ParseSurefire decodes a Surefire XML document. Root counters are read from
// the attributes of the document element; absent counters are zero, while a
// counter that is present but not numeric is a parse error. Only comments,
// processing instructions and whitespace may surround the document element.
func ParseSurefire(r io.Reader) (*SurefireSuite, error) {
	dec := xml.NewDecoder(r)
	var suite *SurefireSuite
	depth := 0
	closed := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing XML data: %w", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("error parsing XML data: text outside the document element")
			}
		case xml.EndElement:
			depth--
			if depth == 0 {
				closed = true
			}
		case xml.StartElement:
			if closed {
				return nil, fmt.Errorf("error parsing XML data: <%s> after the document element", t.Name.Local)
			}
			if suite == nil {
				suite, err = newSurefireSuite(t)
				if err != nil {
					return nil, err
				}
				depth++
				continue
			}
			if t.Name.Local != "testcase" {
				depth++
				continue
			}
			tc := SurefireTestCase{}
			if err := dec.DecodeElement(&tc, &t); err != nil {
				return nil, fmt.Errorf("error parsing testcase: %w", err)
			}
			suite.TestCases = append(suite.TestCases, tc)
		}
	}
	if suite == nil {
		return nil, fmt.Errorf("error parsing XML data: no root element")
	}
	return suite, nil
}

func newSurefireSuite(root xml.StartElement) (*SurefireSuite, error) {
	s := &SurefireSuite{Root: root.Name.Local}
	for _, attr := range root.Attr {
		var err error
		switch attr.Name.Local {
		case "name":
			s.Name = attr.Value
		case "tests":
			s.Tests, err = strconv.Atoi(attr.Value)
		case "failures":
			s.Failures, err = strconv.Atoi(attr.Value)
		case "errors":
			s.Errors, err = strconv.Atoi(attr.Value)
		case "skipped":
			s.Skipped, err = strconv.Atoi(attr.Value)
		case "time":
			s.Time, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid %q attribute on <%s>: %w", attr.Name.Local, root.Name.Local, err)
		}
	}
	return s, nil
}
