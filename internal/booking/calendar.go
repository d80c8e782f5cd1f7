package booking

import (
	"fmt"
	"time"
)

// CalendarEvent is the presentation-ready shape of a booking for any
// calendar-style frontend. Derived, never stored.
type CalendarEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Category string    `json:"category"`
	Color    string    `json:"color"`
}

// placeholderFacilityName is used when a booking's facility reference
// did not resolve; one broken reference must not fail the projection.
const placeholderFacilityName = "Unknown facility"

var paymentStatusColors = map[PaymentStatus]string{
	PaymentPaid:     "#2e7d32",
	PaymentUnpaid:   "#f9a825",
	PaymentRefunded: "#9e9e9e",
}

const defaultEventColor = "#607d8b"

// ProjectCalendar maps bookings to calendar events. Pure, stateless and
// order-preserving; an empty input yields an empty slice.
func ProjectCalendar(bookings []*Booking) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		facilityName := b.FacilityName
		if facilityName == "" {
			facilityName = placeholderFacilityName
		}

		color, ok := paymentStatusColors[b.PaymentStatus]
		if !ok {
			color = defaultEventColor
		}

		events = append(events, CalendarEvent{
			ID:       b.ID,
			Title:    fmt.Sprintf("%s / %s", facilityName, b.RequesterName),
			Start:    b.StartTime,
			End:      b.EndTime,
			Category: string(b.PaymentStatus),
			Color:    color,
		})
	}
	return events
}
