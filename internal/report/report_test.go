package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

var sampleRecords = []TestRecord{
	{Suite: "Login", Name: "Login accepts valid user", State: "passed", Status: StatusPassed, Duration: "120"},
	{Suite: "Login", Name: "Login rejects bad password", State: "failed", Status: StatusFailed, Duration: "80", Message: "expected 401"},
	{Suite: "Login", Name: "Login remembers user", State: "pending", Status: StatusSkipped, Duration: "0"},
}

func TestRunSummaryConsistent(t *testing.T) {
	cases := []struct {
		name    string
		summary RunSummary
		want    bool
	}{
		{name: "empty", summary: RunSummary{}, want: true},
		{name: "adds-up", summary: RunSummary{Total: 4, Passed: 1, Failed: 1, Errors: 1, Skipped: 1}, want: true},
		{name: "missing-outcome", summary: RunSummary{Total: 3, Passed: 1}, want: false},
		{name: "over-counted", summary: RunSummary{Total: 1, Passed: 1, Failed: 1}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.summary.Consistent())
		})
	}
}

func TestRunSummaryDurationString(t *testing.T) {
	assert.Equal(t, "0", RunSummary{}.DurationString())
	assert.Equal(t, "1.75", RunSummary{Duration: 1.75}.DurationString())
	assert.Equal(t, "1234", RunSummary{Duration: 1234}.DurationString())
}

func TestNewDurationStats(t *testing.T) {
	ds := NewDurationStats([]TestRecord{
		{Duration: "3"}, {Duration: "x"}, {Duration: "1"}, {Duration: ""}, {Duration: "2"},
	})
	assert.Equal(t, 3, ds.Count)
	assert.Equal(t, 1.0, ds.Min)
	assert.Equal(t, 3.0, ds.Max)
	assert.Equal(t, 2.0, ds.Mean)
	assert.Equal(t, 2.0, ds.Median)
	assert.GreaterOrEqual(t, ds.P90, ds.Median)
	assert.LessOrEqual(t, ds.P90, ds.Max)

	single := NewDurationStats([]TestRecord{{Duration: "0.25"}})
	assert.Equal(t, DurationStats{Count: 1, Min: 0.25, Max: 0.25, Mean: 0.25, Median: 0.25, P90: 0.25}, single)

	assert.Equal(t, DurationStats{}, NewDurationStats(nil))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", "nested", "report.html")
	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	buf := &bytes.Buffer{}
	Confirm(buf, path)
	assert.Equal(t, "Wrote "+path+"\n", buf.String())
}

func TestOpenInput(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(plain, []byte(`{"stats":{}}`), 0644))

	compressed := filepath.Join(dir, "report.json.xz")
	buf := &bytes.Buffer{}
	w, err := xz.NewWriter(buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"stats":{}}`))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(compressed, buf.Bytes(), 0644))

	for _, path := range []string{plain, compressed} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			r, err := OpenInput(path)
			require.NoError(t, err)
			defer r.Close()
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, `{"stats":{}}`, string(data))
		})
	}

	t.Run("not-xz", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json.xz")
		require.NoError(t, os.WriteFile(bad, []byte("plain text"), 0644))
		_, err := OpenInput(bad)
		assert.Error(t, err)
	})

	t.Run("absent", func(t *testing.T) {
		_, err := OpenInput(filepath.Join(dir, "absent.json"))
		assert.Error(t, err)
	})
}

func TestWriteSummaryFile(t *testing.T) {
	summary := RunSummary{Total: 3, Passed: 1, Failed: 1, Skipped: 1, Duration: 200}
	doc := NewSummaryDocument("mochawesome", "report.html", sampleRecords, summary)
	assert.True(t, doc.Consistent)
	assert.Equal(t, 3, doc.Records)

	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "summary.json")
		require.NoError(t, WriteSummaryFile(path, doc))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		got := SummaryDocument{}
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, *doc, got)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "summary.YML")
		require.NoError(t, WriteSummaryFile(path, doc))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "report: mochawesome\n")
		got := SummaryDocument{}
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, summary, got.Summary)
	})
}

func TestWriteSpreadsheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "tests.xlsx")
	require.NoError(t, WriteSpreadsheet(path, sampleRecords))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Suite", "Test", "State", "Status", "Duration", "Message"}, rows[0])
	assert.Equal(t, []string{"Login", "Login rejects bad password", "failed", "failed", "80", "expected 401"}, rows[2])
}

func TestShowSummary(t *testing.T) {
	doc := NewSummaryDocument("surefire", "report.html", sampleRecords, RunSummary{Total: 5, Passed: 1, Failed: 1})
	buf := &bytes.Buffer{}
	ShowSummary(buf, doc)

	out := buf.String()
	assert.Contains(t, out, "> surefire summary <")
	assert.Contains(t, out, "inconsistent with total")
	assert.Contains(t, out, "min=0 median=80 p90=")
}

func TestOptionsFinish(t *testing.T) {
	dir := t.TempDir()
	buf := &bytes.Buffer{}
	opts := &Options{
		Output:      filepath.Join(dir, "report.html"),
		SummaryFile: filepath.Join(dir, "summary.json"),
		ShowSummary: true,
		Stdout:      buf,
	}
	require.NoError(t, opts.Finish("mochawesome", sampleRecords, RunSummary{Total: 3, Passed: 1, Failed: 1, Skipped: 1}))

	assert.FileExists(t, opts.SummaryFile)
	assert.NoFileExists(t, filepath.Join(dir, "tests.xlsx"))
	assert.Contains(t, buf.String(), "> mochawesome summary <")
	assert.NotContains(t, buf.String(), "inconsistent")
}
