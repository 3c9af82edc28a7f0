// Package glucose contains the core glucose reading types: measurement
// slots, clinical range classification, and the latest-wins slot merger.
package glucose

import "time"

// Status represents the clinical glucose range classification.
type Status string

const (
	StatusCriticalLow  Status = "critical_low"
	StatusLow          Status = "low"
	StatusNormal       Status = "normal"
	StatusHigh         Status = "high"
	StatusCriticalHigh Status = "critical_high"
)

// Glucose thresholds in mg/dL.
const (
	ThresholdCriticalLow  = 54
	ThresholdLow          = 70
	ThresholdHigh         = 180
	ThresholdCriticalHigh = 250
)

// Slot is one of the six fixed daily measurement windows.
type Slot string

const (
	SlotBeforeBreakfast Slot = "before_breakfast"
	SlotAfterBreakfast  Slot = "after_breakfast"
	SlotBeforeLunch     Slot = "before_lunch"
	SlotAfterLunch      Slot = "after_lunch"
	SlotBeforeDinner    Slot = "before_dinner"
	SlotAfterDinner     Slot = "after_dinner"
)

// Slots lists all measurement slots in daily order.
var Slots = []Slot{
	SlotBeforeBreakfast,
	SlotAfterBreakfast,
	SlotBeforeLunch,
	SlotAfterLunch,
	SlotBeforeDinner,
	SlotAfterDinner,
}

// TotalSlots is the number of measurement slots per day.
const TotalSlots = 6

// Record is a single glucose reading.
type Record struct {
	ID         string
	Value      int // mg/dL
	RecordedAt time.Time
	Slot       Slot
	Notes      string
}

// Classify determines the range status for a glucose value. It is total:
// implausible values are still classified, never rejected.
func Classify(mgdl int) Status {
	if mgdl < ThresholdCriticalLow {
		return StatusCriticalLow
	}
	if mgdl < ThresholdLow {
		return StatusLow
	}
	if mgdl <= ThresholdHigh {
		return StatusNormal
	}
	if mgdl <= ThresholdCriticalHigh {
		return StatusHigh
	}
	return StatusCriticalHigh
}

// InRange reports whether a value falls in the 70-180 mg/dL target band.
// This is the time-in-range rule used by stats and scoring; it is narrower
// in purpose than Classify and the two must not be conflated.
func InRange(mgdl int) bool {
	return mgdl >= ThresholdLow && mgdl <= ThresholdHigh
}

// MgdlToMmol converts mg/dL to mmol/L, rounded to one decimal.
func MgdlToMmol(mgdl int) float64 {
	return float64(int(float64(mgdl)/18.0182*10+0.5)) / 10.0
}

// Slot inference windows, hour of day (local time).
var slotWindows = []struct {
	slot Slot
	from int // inclusive
	to   int // exclusive
}{
	{SlotBeforeBreakfast, 0, 8},
	{SlotAfterBreakfast, 8, 11},
	{SlotBeforeLunch, 11, 13},
	{SlotAfterLunch, 13, 17},
	{SlotBeforeDinner, 17, 20},
	{SlotAfterDinner, 20, 24},
}

// SlotForTime infers the measurement slot from the clock time of a reading.
// Used when an entry arrives without an explicit slot.
func SlotForTime(t time.Time) Slot {
	h := t.Hour()
	for _, w := range slotWindows {
		if h >= w.from && h < w.to {
			return w.slot
		}
	}
	return SlotAfterDinner
}
