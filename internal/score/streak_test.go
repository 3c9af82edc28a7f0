package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func localDay(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.Local)
}

func TestAdvanceFirstQualifyingDay(t *testing.T) {
	next := Advance(State{}, localDay(1), 4, 75)

	assert.Equal(t, 1, next.StreakDays)
	assert.Equal(t, 1, next.LongestStreak)
	assert.Equal(t, 75, next.TotalXP)
	assert.Equal(t, localDay(1), next.LastScoredDay)
}

func TestAdvanceConsecutiveDaysExtendStreak(t *testing.T) {
	state := State{}
	for d := 1; d <= 5; d++ {
		state = Advance(state, localDay(d), 3, 50)
	}

	assert.Equal(t, 5, state.StreakDays)
	assert.Equal(t, 5, state.LongestStreak)
	assert.Equal(t, 250, state.TotalXP)
}

func TestAdvanceGapResetsStreak(t *testing.T) {
	state := Advance(State{}, localDay(1), 4, 50)
	state = Advance(state, localDay(2), 4, 50)

	// Day 3 missed entirely; day 4 qualifies again.
	state = Advance(state, localDay(4), 4, 50)

	assert.Equal(t, 1, state.StreakDays)
	assert.Equal(t, 2, state.LongestStreak)
}

func TestAdvanceUnqualifiedDayResetsStreak(t *testing.T) {
	state := Advance(State{}, localDay(1), 4, 50)
	state = Advance(state, localDay(2), 2, 15) // below MinRequiredSlots

	assert.Equal(t, 0, state.StreakDays)
	assert.Equal(t, 65, state.TotalXP) // XP still accrues

	assert.Equal(t, 1, state.LongestStreak)
}

func TestAdvanceSameDayTwiceIsNoOp(t *testing.T) {
	state := Advance(State{}, localDay(1), 4, 50)
	again := Advance(state, localDay(1), 6, 100)

	assert.Equal(t, state, again)
}

func TestAdvanceIgnoresTimeOfDay(t *testing.T) {
	state := Advance(State{}, time.Date(2025, 6, 1, 22, 15, 0, 0, time.Local), 3, 40)
	state = Advance(state, time.Date(2025, 6, 2, 6, 5, 0, 0, time.Local), 3, 40)

	assert.Equal(t, 2, state.StreakDays)
}
