// Package score computes the daily experience-point (XP) award and tracks
// logging streaks.
package score

import (
	"math"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
)

// Scoring policy constants.
const (
	MinRequiredSlots = 3   // slots needed for full-rate slot points
	XPPerSlot        = 10  // per completed slot, at full rate
	MaxInRangeXP     = 30  // in-range bucket ceiling
	XPPerWellnessLog = 5   // per wellness flag (sleep, stress)
	MaxDailyXP       = 100 // base XP cap, applied before the streak multiplier
)

// Streak multiplier tiers. Monotone in streak length; 1.0 at zero days.
var streakTiers = []struct {
	minDays    int
	multiplier float64
}{
	{30, 2.0},
	{14, 1.5},
	{7, 1.25},
	{3, 1.1},
	{0, 1.0},
}

// Input carries everything the scoring engine needs. The engine is pure:
// there is no hidden clock or state beyond these fields.
type Input struct {
	TodayGlucoseRecords []glucose.Record
	HasSleepLogged      bool
	HasStressLogged     bool
	StreakDays          int
	TotalAccumulatedXP  int // passed through for level display, never mutated
}

// Breakdown itemizes the three independent point buckets.
type Breakdown struct {
	SlotsXP    int
	InRangeXP  int
	WellnessXP int
}

// Result is the computed daily score.
type Result struct {
	BaseXP           int
	FinalXP          int
	Breakdown        Breakdown
	StreakDays       int
	StreakMultiplier float64
	SlotsCompleted   int
	TotalSlots       int
	MinRequiredSlots int
	InRangePercent   int
	HasSleepLogged   bool
	HasStressLogged  bool
	MaxDailyXP       int
}

// Compute scores a single day. Duplicate readings for a slot never double
// count: records are slot-merged first, so only distinct slots contribute.
func Compute(in Input) Result {
	merged := distinctSlots(in.TodayGlucoseRecords)
	slotsCompleted := len(merged)

	slotsXP := slotsCompleted * XPPerSlot
	if slotsCompleted < MinRequiredSlots {
		// Below the minimum, slot points accrue at half rate.
		slotsXP = slotsCompleted * XPPerSlot / 2
	}

	inRangePercent := 0
	inRangeXP := 0
	if slotsCompleted > 0 {
		inRange := 0
		for _, r := range merged {
			if glucose.InRange(r.Value) {
				inRange++
			}
		}
		inRangePercent = int(math.Round(float64(inRange) / float64(slotsCompleted) * 100))
		inRangeXP = int(math.Round(float64(inRangePercent) / 100 * MaxInRangeXP))
	}

	wellnessXP := 0
	if in.HasSleepLogged {
		wellnessXP += XPPerWellnessLog
	}
	if in.HasStressLogged {
		wellnessXP += XPPerWellnessLog
	}

	baseXP := slotsXP + inRangeXP + wellnessXP
	if baseXP > MaxDailyXP {
		baseXP = MaxDailyXP
	}

	multiplier := Multiplier(in.StreakDays)

	return Result{
		BaseXP:           baseXP,
		FinalXP:          int(math.Round(float64(baseXP) * multiplier)),
		Breakdown:        Breakdown{SlotsXP: slotsXP, InRangeXP: inRangeXP, WellnessXP: wellnessXP},
		StreakDays:       in.StreakDays,
		StreakMultiplier: multiplier,
		SlotsCompleted:   slotsCompleted,
		TotalSlots:       glucose.TotalSlots,
		MinRequiredSlots: MinRequiredSlots,
		InRangePercent:   inRangePercent,
		HasSleepLogged:   in.HasSleepLogged,
		HasStressLogged:  in.HasStressLogged,
		MaxDailyXP:       MaxDailyXP,
	}
}

// Multiplier returns the streak multiplier for a streak length. Negative
// lengths are treated as zero.
func Multiplier(streakDays int) float64 {
	for _, tier := range streakTiers {
		if streakDays >= tier.minDays {
			return tier.multiplier
		}
	}
	return 1.0
}

// distinctSlots reduces the day's records to one per slot, latest wins.
func distinctSlots(records []glucose.Record) []glucose.Record {
	if len(records) == 0 {
		return nil
	}
	merged := glucose.MergeByDate(records, records[0].RecordedAt)
	return merged.Records()
}
