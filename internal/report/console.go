package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ColorHelper colors console output when writing to a terminal.
type ColorHelper struct {
	enabled bool
}

func NewColorHelper() *ColorHelper {
	return &ColorHelper{enabled: !color.NoColor}
}

func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// counter colors n with fn when it is not zero.
func (c *ColorHelper) counter(n int, fn func(string) string) string {
	s := fmt.Sprintf("%d", n)
	if n == 0 {
		return s
	}
	return fn(s)
}

// ShowSummary prints the summary document as an aligned table.
func ShowSummary(w io.Writer, doc *SummaryDocument) {
	c := NewColorHelper()
	s := doc.Summary

	fmt.Fprintf(w, "\n> %s summary <\n\n", doc.Report)
	tbWriter := tabwriter.NewWriter(w, 0, 8, 1, '\t', tabwriter.AlignRight)
	fmt.Fprintf(tbWriter, " - Total\t: %d\n", s.Total)
	fmt.Fprintf(tbWriter, " - Passed\t: %s\n", c.counter(s.Passed, c.Success))
	fmt.Fprintf(tbWriter, " - Failed\t: %s\n", c.counter(s.Failed, c.Failure))
	fmt.Fprintf(tbWriter, " - Errors\t: %s\n", c.counter(s.Errors, c.Failure))
	fmt.Fprintf(tbWriter, " - Skipped\t: %s\n", c.counter(s.Skipped, c.Warning))
	fmt.Fprintf(tbWriter, " - Duration\t: %s\n", s.DurationString())
	fmt.Fprintf(tbWriter, " - Records\t: %d\n", doc.Records)
	if !doc.Consistent {
		fmt.Fprintf(tbWriter, " - Counters\t: %s\n", c.Warning("inconsistent with total"))
	}
	d := doc.Durations
	if d.Count > 0 {
		fmt.Fprintf(tbWriter, " - Durations\t: min=%g median=%g p90=%g max=%g\n", d.Min, d.Median, d.P90, d.Max)
	}
	tbWriter.Flush()
}
