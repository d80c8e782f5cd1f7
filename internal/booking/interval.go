package booking

import (
	"sort"
	"time"
)

// Interval is a half-open time span [Start, End) used for overlap arithmetic.
// It is derived from bookings and never persisted on its own.
type Interval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

// Overlaps reports whether two half-open intervals intersect.
// [s1,e1) and [s2,e2) overlap iff s1 < e2 AND s2 < e1, so a booking ending
// at 10:00 never conflicts with one starting at 10:00.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// HasConflict reports whether the candidate overlaps any existing interval.
// Pure function: no side effects, no I/O.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			return true
		}
	}
	return false
}

// ConflictsWith returns the existing intervals the candidate overlaps,
// so rejections can show the caller exactly which slots are taken.
func ConflictsWith(candidate Interval, existing []Interval) []Interval {
	var conflicts []Interval
	for _, iv := range existing {
		if candidate.Overlaps(iv) {
			conflicts = append(conflicts, iv)
		}
	}
	return conflicts
}

// SortIntervals orders intervals by start time for deterministic display.
func SortIntervals(intervals []Interval) {
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
}
