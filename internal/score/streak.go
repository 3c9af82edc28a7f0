package score

import (
	"time"

	"github.com/SantiagoB07/murphy-go/internal/glucose"
)

// State is the persisted streak and XP counter for a patient.
type State struct {
	StreakDays    int
	LongestStreak int
	TotalXP       int
	LastScoredDay time.Time // local midnight of the last closed day; zero if never scored
}

// Advance closes out a day and returns the updated state. A day qualifies
// when at least MinRequiredSlots slots were completed. Consecutive
// qualifying days extend the streak; a missed or unqualified day resets it.
// Scoring the same day twice is a no-op.
func Advance(state State, day time.Time, slotsCompleted int, earnedXP int) State {
	d := glucose.StartOfDay(day)

	if !state.LastScoredDay.IsZero() && !d.After(state.LastScoredDay) {
		return state
	}

	next := state
	next.LastScoredDay = d
	next.TotalXP += earnedXP

	qualified := slotsCompleted >= MinRequiredSlots
	consecutive := !state.LastScoredDay.IsZero() &&
		d.Equal(state.LastScoredDay.AddDate(0, 0, 1))

	switch {
	case qualified && consecutive:
		next.StreakDays = state.StreakDays + 1
	case qualified:
		next.StreakDays = 1
	default:
		next.StreakDays = 0
	}

	if next.StreakDays > next.LongestStreak {
		next.LongestStreak = next.StreakDays
	}
	return next
}
