package report

import (
	"math"
	"strconv"

	"github.com/montanaflynn/stats"
)

// DurationStats describes the distribution of per-test durations, in the
// unit of the source report.
type DurationStats struct {
	Count  int     `json:"count" yaml:"count"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	P90    float64 `json:"p90" yaml:"p90"`
}

// NewDurationStats computes statistics over the records with a numeric
// duration. Records with an unparseable duration are left out.
func NewDurationStats(records []TestRecord) DurationStats {
	data := stats.Float64Data{}
	for _, r := range records {
		v, err := strconv.ParseFloat(r.Duration, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		data = append(data, v)
	}
	ds := DurationStats{Count: data.Len()}
	if ds.Count == 0 {
		return ds
	}

	ds.Min, _ = stats.Min(data)
	ds.Max, _ = stats.Max(data)
	ds.Mean, _ = stats.Mean(data)
	ds.Median, _ = stats.Median(data)
	// Percentile has no answer for very small samples; the maximum is used instead.
	if p90, err := stats.Percentile(data, 90); err == nil && !math.IsNaN(p90) {
		ds.P90 = p90
	} else {
		ds.P90 = ds.Max
	}

	for _, v := range []*float64{&ds.Mean, &ds.Median, &ds.P90} {
		if r, err := stats.Round(*v, 3); err == nil {
			*v = r
		}
	}
	return ds
}
