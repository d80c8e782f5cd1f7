package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCalendarEmpty(t *testing.T) {
	events := ProjectCalendar(nil)
	assert.NotNil(t, events)
	assert.Empty(t, events)

	assert.Empty(t, ProjectCalendar([]*Booking{}))
}

func TestProjectCalendar(t *testing.T) {
	start := time.Date(2025, 11, 1, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	bookings := []*Booking{
		{
			ID:            "b1",
			FacilityName:  "Pool",
			RequesterName: "Alice Chen",
			StartTime:     start,
			EndTime:       end,
			PaymentStatus: PaymentPaid,
		},
		{
			ID:            "b2",
			FacilityName:  "Court 2",
			RequesterName: "Bob Lin",
			StartTime:     end,
			EndTime:       end.Add(time.Hour),
			PaymentStatus: PaymentUnpaid,
		},
	}

	events := ProjectCalendar(bookings)
	require.Len(t, events, 2)

	// Order-preserving map.
	assert.Equal(t, "b1", events[0].ID)
	assert.Equal(t, "b2", events[1].ID)

	assert.Equal(t, "Pool / Alice Chen", events[0].Title)
	assert.Equal(t, start, events[0].Start)
	assert.Equal(t, end, events[0].End)
	assert.Equal(t, "paid", events[0].Category)

	// Fixed color mapping per payment status.
	assert.Equal(t, paymentStatusColors[PaymentPaid], events[0].Color)
	assert.Equal(t, paymentStatusColors[PaymentUnpaid], events[1].Color)
	assert.NotEqual(t, events[0].Color, events[1].Color)
}

func TestProjectCalendarIdempotent(t *testing.T) {
	bookings := []*Booking{
		{
			ID:            "b1",
			FacilityName:  "Sauna",
			RequesterName: "Carol Wu",
			StartTime:     time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
			PaymentStatus: PaymentRefunded,
		},
	}

	first := ProjectCalendar(bookings)
	second := ProjectCalendar(bookings)
	assert.Equal(t, first, second)
}

func TestProjectCalendarUnresolvedFacility(t *testing.T) {
	bookings := []*Booking{
		{
			ID:            "b1",
			FacilityName:  "", // facility reference failed to resolve
			RequesterName: "Dana Ko",
			StartTime:     time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
			EndTime:       time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC),
			PaymentStatus: PaymentUnpaid,
		},
	}

	events := ProjectCalendar(bookings)
	require.Len(t, events, 1)
	assert.Equal(t, "Unknown facility / Dana Ko", events[0].Title)
}
