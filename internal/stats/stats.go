// Package stats aggregates glucose readings over a date range.
package stats

import (
	"math"
	"time"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
)

// PeriodStats holds aggregate statistics for a set of readings over a
// date window.
type PeriodStats struct {
	Count                  int
	Avg                    int // rounded mean, mg/dL
	Min                    int
	Max                    int
	InRangeCount           int
	InRangePercent         int
	TotalDays              int
	DaysWithRecords        int
	DaysWithRecordsPercent int
	AvgTakesPerDay         float64 // one decimal
	StdDev                 int     // rounded population std deviation
}

// Compute aggregates records over the inclusive [start, end] window.
// It returns nil for an empty record list so callers can tell "no data"
// apart from a valid zero-variance result.
//
// DaysWithRecords counts distinct calendar days across the input as given;
// the list is not re-filtered to the window. Callers that want TotalDays
// and DaysWithRecords on the same window must pass a range-filtered list
// (see glucose.MergeByRange).
func Compute(records []glucose.Record, start, end time.Time) *PeriodStats {
	if len(records) == 0 {
		return nil
	}

	count := len(records)
	sum := 0
	min := records[0].Value
	max := records[0].Value
	inRange := 0
	days := make(map[string]struct{})

	for _, r := range records {
		sum += r.Value
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
		if glucose.InRange(r.Value) {
			inRange++
		}
		days[r.RecordedAt.Format("2006-01-02")] = struct{}{}
	}

	mean := float64(sum) / float64(count)

	var sumSq float64
	for _, r := range records {
		d := float64(r.Value) - mean
		sumSq += d * d
	}
	stdDev := math.Sqrt(sumSq / float64(count))

	totalDays := daysBetween(start, end) + 1

	return &PeriodStats{
		Count:                  count,
		Avg:                    int(math.Round(mean)),
		Min:                    min,
		Max:                    max,
		InRangeCount:           inRange,
		InRangePercent:         int(math.Round(float64(inRange) / float64(count) * 100)),
		TotalDays:              totalDays,
		DaysWithRecords:        len(days),
		DaysWithRecordsPercent: int(math.Round(float64(len(days)) / float64(totalDays) * 100)),
		AvgTakesPerDay:         math.Round(float64(count)/float64(totalDays)*10) / 10,
		StdDev:                 int(math.Round(stdDev)),
	}
}

// daysBetween counts whole calendar days from start to end, ignoring the
// time of day on either side. Rounding absorbs DST-shortened days.
func daysBetween(start, end time.Time) int {
	s := glucose.StartOfDay(start)
	e := glucose.StartOfDay(end)
	return int(math.Round(e.Sub(s).Hours() / 24))
}
