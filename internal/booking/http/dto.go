package http

import (
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/booking"
	facHttp "github.com/tidegrove/facility-booking-backend/internal/facility/http"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/request"
)

const dateLayout = "2006-01-02"
const clockLayout = "15:04"

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	FacilityID     string `form:"facility_id" binding:"omitempty,uuid"`
	PaymentStatus  string `form:"payment_status" binding:"omitempty,oneof=unpaid paid refunded"`
	RequesterEmail string `form:"requester_email" binding:"omitempty,email"`
	DateFrom       string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo         string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	SortBy         string `form:"sort_by" binding:"omitempty,oneof=booking_date start_time created_at payment_status"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.DateFrom != "" && r.DateTo != "" && r.DateFrom > r.DateTo {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

type RequesterResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID              string              `json:"id"`
	BookingCode     string              `json:"booking_code"`
	Facility        facHttp.FacilityTag `json:"facility"`
	Requester       RequesterResponse   `json:"requester"`
	BookingDate     string              `json:"booking_date"`
	StartTime       time.Time           `json:"start_time"`
	EndTime         time.Time           `json:"end_time"`
	DurationHours   float64             `json:"duration_hours"`
	TotalPriceCents int64               `json:"total_price_cents"`
	PaymentStatus   string              `json:"payment_status"`
	Attendees       *int                `json:"attendees,omitempty"`
	Purpose         string              `json:"purpose,omitempty"`
	SpecialRequests string              `json:"special_requests,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		BookingCode: b.BookingCode,
		Facility:    facHttp.FacilityTag{ID: b.FacilityID, Name: b.FacilityName},
		Requester: RequesterResponse{
			Name:  b.RequesterName,
			Email: b.RequesterEmail,
			Phone: b.RequesterPhone,
		},
		BookingDate:     b.BookingDate.Format(dateLayout),
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationHours:   b.DurationHours,
		TotalPriceCents: b.TotalPriceCents,
		PaymentStatus:   string(b.PaymentStatus),
		Attendees:       b.Attendees,
		Purpose:         b.Purpose,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type CreateBookingBody struct {
	FacilityID      string `json:"facility_id" binding:"required,uuid"`
	RequesterName   string `json:"requester_name" binding:"required"`
	RequesterEmail  string `json:"requester_email" binding:"required,email"`
	RequesterPhone  string `json:"requester_phone"`
	BookingDate     string `json:"booking_date" binding:"required,datetime=2006-01-02"`
	StartTime       string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime         string `json:"end_time" binding:"required,datetime=15:04"`
	Attendees       *int   `json:"attendees" binding:"omitempty,min=1"`
	Purpose         string `json:"purpose"`
	SpecialRequests string `json:"special_requests"`
}

// ToCreateRequest combines the wall-clock times with the booking date and
// builds the service-level request. Binding already guarantees the formats.
func (b *CreateBookingBody) ToCreateRequest() (booking.CreateRequest, error) {
	date, err := time.Parse(dateLayout, b.BookingDate)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	start, err := time.Parse(clockLayout, b.StartTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}
	end, err := time.Parse(clockLayout, b.EndTime)
	if err != nil {
		return booking.CreateRequest{}, err
	}

	return booking.CreateRequest{
		FacilityID:      b.FacilityID,
		RequesterName:   b.RequesterName,
		RequesterEmail:  b.RequesterEmail,
		RequesterPhone:  b.RequesterPhone,
		BookingDate:     date,
		StartTime:       booking.CombineDateTime(date, start),
		EndTime:         booking.CombineDateTime(date, end),
		Attendees:       b.Attendees,
		Purpose:         b.Purpose,
		SpecialRequests: b.SpecialRequests,
	}, nil
}

type UpdatePaymentBody struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=unpaid paid refunded"`
}

// CalendarRequest defines query parameters for the calendar projection.
type CalendarRequest struct {
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
}
