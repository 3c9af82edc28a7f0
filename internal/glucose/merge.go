package glucose

import (
	"sort"
	"time"
)

// SlotMap holds at most one record per slot for a single calendar day.
// For duplicate same-slot entries the most recently recorded one wins;
// superseded records stay in storage but are not surfaced here.
type SlotMap map[Slot]Record

// MergeByDate reduces a record list to the per-slot view for one calendar
// day. Records from other days are ignored. Day boundaries are local
// midnight to midnight. When two records for the same slot share an
// identical RecordedAt, the one with the higher ID wins; the tie-break is
// deliberate so the result never depends on input order.
func MergeByDate(records []Record, date time.Time) SlotMap {
	merged := make(SlotMap)
	for _, r := range records {
		if !sameDay(r.RecordedAt, date) {
			continue
		}
		cur, ok := merged[r.Slot]
		if !ok || supersedes(r, cur) {
			merged[r.Slot] = r
		}
	}
	return merged
}

// supersedes reports whether candidate replaces current in the slot map.
func supersedes(candidate, current Record) bool {
	if candidate.RecordedAt.After(current.RecordedAt) {
		return true
	}
	if candidate.RecordedAt.Equal(current.RecordedAt) {
		return candidate.ID > current.ID
	}
	return false
}

// MergeByRange returns every record recorded within [startOfDay(start),
// endOfDay(end)] inclusive, ascending by time. Unlike MergeByDate it does
// not reduce to one record per slot; it feeds charts and period views.
func MergeByRange(records []Record, start, end time.Time) []Record {
	lo := StartOfDay(start)
	hi := EndOfDay(end)

	var out []Record
	for _, r := range records {
		if r.RecordedAt.Before(lo) || r.RecordedAt.After(hi) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out
}

// Completed returns how many slots have a reading.
func (m SlotMap) Completed() int {
	return len(m)
}

// Records returns the merged readings in daily slot order.
func (m SlotMap) Records() []Record {
	var out []Record
	for _, slot := range Slots {
		if r, ok := m[slot]; ok {
			out = append(out, r)
		}
	}
	return out
}

// StartOfDay returns local midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// sameDay reports whether two times fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
