package booking

import (
	"fmt"
	"net/http"
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, http.StatusNotFound, "booking not found")
	ErrInvalidTimeRange    = apperror.New(apperror.KindInvalidTimeRange, http.StatusBadRequest, "end time must be after start time")
	ErrDatePast            = apperror.New(apperror.KindValidation, http.StatusBadRequest, "booking_date cannot be in the past")
	ErrFacilityUnavailable = apperror.New(apperror.KindFacilityUnavailable, http.StatusConflict, "facility is not available for booking")
	ErrSlotConflict        = apperror.New(apperror.KindSlotConflict, http.StatusConflict, "time slot already booked")
	ErrDuplicateCode       = apperror.New(apperror.KindDuplicateCode, http.StatusInternalServerError, "failed to generate a unique booking code")
	ErrInvalidTransition   = apperror.New(apperror.KindValidation, http.StatusBadRequest, "invalid payment status transition")
)

// NewValidationError builds a field-specific validation rejection.
func NewValidationError(field, reason string) *apperror.AppError {
	e := apperror.New(apperror.KindValidation, http.StatusBadRequest, fmt.Sprintf("%s: %s", field, reason))
	e.Details = map[string]string{"field": field}
	return e
}

// NewSlotConflictError attaches the conflicting intervals to the conflict rejection.
func NewSlotConflictError(conflicts []Interval) *apperror.AppError {
	return ErrSlotConflict.WithDetails(conflicts)
}

// PaymentStatus tracks the payment state of a booking. Payment itself is
// handled by an external flow; the core only stores the state.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidPaymentStatus reports whether s is a known payment state.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentUnpaid, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Booking is a confirmed reservation of a facility for a date and time interval.
// A refunded booking is terminal and no longer blocks its slot.
type Booking struct {
	ID              string
	BookingCode     string // Human-readable, globally unique, customer-facing
	FacilityID      string
	FacilityName    string
	RequesterName   string
	RequesterEmail  string
	RequesterPhone  string
	BookingDate     time.Time // Calendar date, midnight UTC
	StartTime       time.Time
	EndTime         time.Time
	DurationHours   float64 // Always recomputed from EndTime - StartTime
	TotalPriceCents int64   // Opaque to the core; set by the payment flow
	PaymentStatus   PaymentStatus
	Attendees       *int
	Purpose         string
	SpecialRequests string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Interval projects the booking to its half-open time span.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.StartTime, End: b.EndTime}
}

// Blocking reports whether the booking still occupies its slot.
func (b *Booking) Blocking() bool {
	return b.PaymentStatus != PaymentRefunded
}

// Filter defines parameters for listing bookings.
type Filter struct {
	FacilityID     string
	PaymentStatus  string
	RequesterEmail string
	DateFrom       *time.Time
	DateTo         *time.Time
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}
