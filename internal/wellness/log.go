// Package wellness holds the daily sleep and stress log entries that feed
// the XP scoring flags.
package wellness

import "time"

// Kind identifies the type of wellness log.
type Kind string

const (
	KindSleep  Kind = "sleep"
	KindStress Kind = "stress"
)

// Log is a single wellness entry. Scoring only cares about the presence of
// an entry on a given day; Value is display-only (hours slept, stress 1-10).
type Log struct {
	ID         string
	Kind       Kind
	Value      float64
	RecordedAt time.Time
	Notes      string
}

// LoggedOn reports whether any log of the given kind exists on the same
// local calendar day as day.
func LoggedOn(logs []Log, kind Kind, day time.Time) bool {
	dy, dm, dd := day.Date()
	for _, l := range logs {
		if l.Kind != kind {
			continue
		}
		ly, lm, ld := l.RecordedAt.Date()
		if ly == dy && lm == dm && ld == dd {
			return true
		}
	}
	return false
}
