package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFreeSlots(t *testing.T) {
	day := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	at := func(hour, min int) time.Time {
		return day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	}

	tests := []struct {
		name   string
		open   time.Time
		close  time.Time
		booked []Interval
		want   []Interval
	}{
		{
			name:  "no bookings, full day available",
			open:  at(9, 0),
			close: at(18, 0),
			want:  []Interval{{Start: at(9, 0), End: at(18, 0)}},
		},
		{
			name:   "one booking in the middle",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(12, 0), End: at(13, 0)}},
			want: []Interval{
				{Start: at(9, 0), End: at(12, 0)},
				{Start: at(13, 0), End: at(18, 0)},
			},
		},
		{
			name:   "booking covers entire day",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(9, 0), End: at(18, 0)}},
			want:   nil,
		},
		{
			name:   "booking at opening edge",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(9, 0), End: at(10, 0)}},
			want:   []Interval{{Start: at(10, 0), End: at(18, 0)}},
		},
		{
			name:   "booking at closing edge",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(17, 0), End: at(18, 0)}},
			want:   []Interval{{Start: at(9, 0), End: at(17, 0)}},
		},
		{
			name:  "unsorted bookings are handled",
			open:  at(9, 0),
			close: at(18, 0),
			booked: []Interval{
				{Start: at(15, 0), End: at(16, 0)},
				{Start: at(10, 0), End: at(11, 0)},
			},
			want: []Interval{
				{Start: at(9, 0), End: at(10, 0)},
				{Start: at(11, 0), End: at(15, 0)},
				{Start: at(16, 0), End: at(18, 0)},
			},
		},
		{
			name:   "booking spilling past closing is clamped",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(17, 0), End: at(19, 0)}},
			want:   []Interval{{Start: at(9, 0), End: at(17, 0)}},
		},
		{
			name:   "booking outside opening window is ignored",
			open:   at(9, 0),
			close:  at(18, 0),
			booked: []Interval{{Start: at(19, 0), End: at(20, 0)}},
			want:   []Interval{{Start: at(9, 0), End: at(18, 0)}},
		},
		{
			name:  "inverted window yields nothing",
			open:  at(18, 0),
			close: at(9, 0),
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FreeSlots(tt.open, tt.close, tt.booked))
		})
	}
}

func TestBookedIntervals(t *testing.T) {
	day := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	at := func(hour int) time.Time { return day.Add(time.Duration(hour) * time.Hour) }

	bookings := []*Booking{
		{StartTime: at(14), EndTime: at(15), PaymentStatus: PaymentUnpaid},
		{StartTime: at(9), EndTime: at(10), PaymentStatus: PaymentPaid},
		{StartTime: at(11), EndTime: at(12), PaymentStatus: PaymentRefunded},
	}

	got := BookedIntervals(bookings)

	// Refunded bookings release their slot; the rest come back sorted.
	assert.Equal(t, []Interval{
		{Start: at(9), End: at(10)},
		{Start: at(14), End: at(15)},
	}, got)
}

func TestBookedIntervalsEmpty(t *testing.T) {
	assert.Empty(t, BookedIntervals(nil))
}
