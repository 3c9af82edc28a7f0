package stats

import (
	"testing"
	"time"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(d, hour int) time.Time {
	return time.Date(2025, 6, d, hour, 0, 0, 0, time.Local)
}

func rec(id string, value, d, hour int) glucose.Record {
	return glucose.Record{
		ID:         id,
		Value:      value,
		RecordedAt: at(d, hour),
		Slot:       glucose.SlotForTime(at(d, hour)),
	}
}

func TestComputeEmptyReturnsNil(t *testing.T) {
	result := Compute(nil, at(1, 0), at(7, 0))
	assert.Nil(t, result)

	result = Compute([]glucose.Record{}, at(1, 0), at(7, 0))
	assert.Nil(t, result)
}

func TestComputeWorkedExample(t *testing.T) {
	// Values [70, 90, 200, 60] over a 2-day window.
	records := []glucose.Record{
		rec("a", 70, 1, 7),
		rec("b", 90, 1, 12),
		rec("c", 200, 2, 7),
		rec("d", 60, 2, 12),
	}

	result := Compute(records, at(1, 0), at(2, 0))
	require.NotNil(t, result)

	assert.Equal(t, 4, result.Count)
	assert.Equal(t, 105, result.Avg)
	assert.Equal(t, 60, result.Min)
	assert.Equal(t, 200, result.Max)
	assert.Equal(t, 2, result.InRangeCount) // 70 and 90
	assert.Equal(t, 50, result.InRangePercent)
	assert.Equal(t, 2, result.TotalDays)
	assert.Equal(t, 2, result.DaysWithRecords)
	assert.Equal(t, 100, result.DaysWithRecordsPercent)
	assert.Equal(t, 2.0, result.AvgTakesPerDay)
}

func TestComputeStdDev(t *testing.T) {
	// Population std dev of [100, 100, 100, 100] is 0.
	uniform := []glucose.Record{
		rec("a", 100, 1, 7), rec("b", 100, 1, 12), rec("c", 100, 1, 18), rec("d", 100, 1, 21),
	}
	result := Compute(uniform, at(1, 0), at(1, 0))
	require.NotNil(t, result)
	assert.Equal(t, 0, result.StdDev)

	// Population std dev of [80, 120]: mean 100, deviations 20 -> 20.
	spread := []glucose.Record{rec("a", 80, 1, 7), rec("b", 120, 1, 12)}
	result = Compute(spread, at(1, 0), at(1, 0))
	require.NotNil(t, result)
	assert.Equal(t, 20, result.StdDev)

	// Divide by N, not N-1: [70, 100, 130] -> sqrt(1800/3) ~= 24.49 -> 24.
	three := []glucose.Record{rec("a", 70, 1, 7), rec("b", 100, 1, 12), rec("c", 130, 1, 18)}
	result = Compute(three, at(1, 0), at(1, 0))
	require.NotNil(t, result)
	assert.Equal(t, 24, result.StdDev)
}

func TestComputeSingleRecord(t *testing.T) {
	result := Compute([]glucose.Record{rec("a", 95, 1, 7)}, at(1, 0), at(7, 0))
	require.NotNil(t, result)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 95, result.Avg)
	assert.Equal(t, 95, result.Min)
	assert.Equal(t, 95, result.Max)
	assert.Equal(t, 0, result.StdDev)
	assert.Equal(t, 7, result.TotalDays)
	assert.Equal(t, 1, result.DaysWithRecords)
	assert.Equal(t, 14, result.DaysWithRecordsPercent)
	assert.Equal(t, 0.1, result.AvgTakesPerDay)
}

func TestComputeTotalDaysInclusive(t *testing.T) {
	records := []glucose.Record{rec("a", 100, 3, 7)}

	// Same day: 1 day.
	result := Compute(records, at(3, 9), at(3, 18))
	require.NotNil(t, result)
	assert.Equal(t, 1, result.TotalDays)

	// Time of day on the bounds is ignored.
	result = Compute(records, at(1, 23), at(7, 1))
	require.NotNil(t, result)
	assert.Equal(t, 7, result.TotalDays)
}

func TestComputeMoreRecordsThanDaysNotClamped(t *testing.T) {
	// 8 readings in a 1-day window: averages above 100% are reported as-is.
	var records []glucose.Record
	for i := 0; i < 8; i++ {
		records = append(records, rec(string(rune('a'+i)), 100, 1, 6+i))
	}
	// Spread across two calendar days of input against a 1-day window.
	records = append(records, rec("x", 100, 2, 7))

	result := Compute(records, at(1, 0), at(1, 0))
	require.NotNil(t, result)

	assert.Equal(t, 1, result.TotalDays)
	assert.Equal(t, 2, result.DaysWithRecords)
	assert.Equal(t, 200, result.DaysWithRecordsPercent)
	assert.Equal(t, 9.0, result.AvgTakesPerDay)
}

func TestComputeDaysWithRecordsUsesInputAsGiven(t *testing.T) {
	// Records outside the window still count toward DaysWithRecords; the
	// function does not re-filter its input.
	records := []glucose.Record{
		rec("in", 100, 2, 7),
		rec("out", 110, 9, 7),
	}

	result := Compute(records, at(1, 0), at(3, 0))
	require.NotNil(t, result)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 2, result.DaysWithRecords)
}

func TestComputeInRangeBoundaries(t *testing.T) {
	records := []glucose.Record{
		rec("a", 69, 1, 7),
		rec("b", 70, 1, 9),
		rec("c", 180, 1, 12),
		rec("d", 181, 1, 18),
	}

	result := Compute(records, at(1, 0), at(1, 0))
	require.NotNil(t, result)

	assert.Equal(t, 2, result.InRangeCount)
	assert.Equal(t, 50, result.InRangePercent)
}
