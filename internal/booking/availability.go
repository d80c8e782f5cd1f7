package booking

import "time"

// BookedIntervals projects blocking bookings to their intervals, sorted by
// start time. Refunded bookings no longer hold their slot and are skipped.
func BookedIntervals(bookings []*Booking) []Interval {
	intervals := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if !b.Blocking() {
			continue
		}
		intervals = append(intervals, b.Interval())
	}
	SortIntervals(intervals)
	return intervals
}

// FreeSlots returns the free windows inside [open, close) once the booked
// intervals are carved out. Booked intervals may touch or overlap each other;
// intervals outside the opening window are clamped to it.
func FreeSlots(open, close time.Time, booked []Interval) []Interval {
	if !open.Before(close) {
		return nil
	}

	sorted := make([]Interval, len(booked))
	copy(sorted, booked)
	SortIntervals(sorted)

	var free []Interval
	cursor := open

	for _, iv := range sorted {
		if !iv.End.After(cursor) || !iv.Start.Before(close) {
			continue
		}
		if iv.Start.After(cursor) {
			end := iv.Start
			if end.After(close) {
				end = close
			}
			free = append(free, Interval{Start: cursor, End: end})
		}
		if iv.End.After(cursor) {
			cursor = iv.End
		}
		if !cursor.Before(close) {
			return free
		}
	}

	if cursor.Before(close) {
		free = append(free, Interval{Start: cursor, End: close})
	}
	return free
}

// CombineDateTime anchors a wall-clock HH:MM onto a calendar date in UTC.
func CombineDateTime(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC,
	)
}
