package glucose

// Display lookup tables for the presentation layer. The slot and status
// enumerations are closed, so plain maps are enough.

// SlotLabels maps slots to display labels.
var SlotLabels = map[Slot]string{
	SlotBeforeBreakfast: "Before breakfast",
	SlotAfterBreakfast:  "After breakfast",
	SlotBeforeLunch:     "Before lunch",
	SlotAfterLunch:      "After lunch",
	SlotBeforeDinner:    "Before dinner",
	SlotAfterDinner:     "After dinner",
}

// StatusLabels maps statuses to display labels.
var StatusLabels = map[Status]string{
	StatusCriticalLow:  "Critically low",
	StatusLow:          "Low",
	StatusNormal:       "In range",
	StatusHigh:         "High",
	StatusCriticalHigh: "Critically high",
}

// StatusColors maps statuses to hex colors, following the Dexcom scheme.
var StatusColors = map[Status]string{
	StatusCriticalLow:  "#ff0000", // Red - below 54
	StatusLow:          "#ff6464", // Light red - 54-69
	StatusNormal:       "#00ff00", // Green - 70-180
	StatusHigh:         "#ffff00", // Yellow - 181-250
	StatusCriticalHigh: "#ffa500", // Orange - above 250
}

// Label returns the display label for a slot.
func (s Slot) Label() string {
	if l, ok := SlotLabels[s]; ok {
		return l
	}
	return string(s)
}

// Label returns the display label for a status.
func (s Status) Label() string {
	if l, ok := StatusLabels[s]; ok {
		return l
	}
	return string(s)
}
