package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/facility"
)

// FacilityRegistry is the slice of the facility service the booking core
// depends on. Injected so the core can be tested without storage.
type FacilityRegistry interface {
	GetByID(ctx context.Context, id string) (*facility.Facility, error)
}

// codeGenAttempts bounds retries when the generated booking code collides
// with an existing one at the store boundary.
const codeGenAttempts = 3

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CreateRequest struct {
	FacilityID      string
	RequesterName   string
	RequesterEmail  string
	RequesterPhone  string
	BookingDate     time.Time
	StartTime       time.Time
	EndTime         time.Time
	Attendees       *int
	Purpose         string
	SpecialRequests string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByCode(ctx context.Context, code string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// ListBookedSlots returns the already-reserved intervals for a facility
	// and date, for pre-flight display before a user submits a request.
	ListBookedSlots(ctx context.Context, facilityID string, date time.Time) ([]Interval, error)

	// AvailableSlots returns the free windows within the facility's opening
	// hours on the given date.
	AvailableSlots(ctx context.Context, facilityID string, date time.Time) ([]Interval, error)

	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (*Booking, error)
	Cancel(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	facilities FacilityRegistry
}

func NewService(repo Repository, facilities FacilityRegistry) Service {
	return &service{
		repo:       repo,
		facilities: facilities,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Field validation, first failure wins.
	if err := validateCreateRequest(&req); err != nil {
		return nil, err
	}

	// 2. Time ordering. Duration is always derived from the times.
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	date := truncateToDay(req.BookingDate)
	if date.Before(truncateToDay(time.Now().UTC())) {
		return nil, ErrDatePast
	}

	// 3. Facility must exist and be bookable. A facility in maintenance or
	// closed status short-circuits before any availability math.
	fac, err := s.facilities.GetByID(ctx, req.FacilityID)
	if err != nil {
		if errors.Is(err, facility.ErrNotFound) {
			return nil, ErrFacilityUnavailable
		}
		return nil, err
	}
	if !fac.IsBookable() {
		return nil, ErrFacilityUnavailable
	}

	// 4-5. Fast-path conflict check against existing reservations. The
	// exclusion constraint in the store is the actual guarantee under
	// concurrent requests; this check exists to report the conflicting
	// slots back to the caller.
	existing, err := s.repo.ListForDate(ctx, req.FacilityID, date)
	if err != nil {
		return nil, err
	}

	candidate := Interval{Start: req.StartTime, End: req.EndTime}
	if conflicts := ConflictsWith(candidate, BookedIntervals(existing)); len(conflicts) > 0 {
		return nil, NewSlotConflictError(conflicts)
	}

	b := &Booking{
		FacilityID:      req.FacilityID,
		FacilityName:    fac.Name,
		RequesterName:   strings.TrimSpace(req.RequesterName),
		RequesterEmail:  strings.TrimSpace(req.RequesterEmail),
		RequesterPhone:  strings.TrimSpace(req.RequesterPhone),
		BookingDate:     date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationHours:   req.EndTime.Sub(req.StartTime).Hours(),
		PaymentStatus:   PaymentUnpaid,
		Attendees:       req.Attendees,
		Purpose:         req.Purpose,
		SpecialRequests: req.SpecialRequests,
	}

	// 6-7. Assign a code and persist. Code collisions are rare; retry a few
	// times before giving up.
	for attempt := 0; attempt < codeGenAttempts; attempt++ {
		code, err := GenerateBookingCode(time.Now().UTC())
		if err != nil {
			return nil, err
		}
		b.BookingCode = code

		err = s.repo.Create(ctx, b)
		if errors.Is(err, ErrDuplicateCode) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	return nil, ErrDuplicateCode
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCode(ctx context.Context, code string) (*Booking, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListBookedSlots(ctx context.Context, facilityID string, date time.Time) ([]Interval, error) {
	bookings, err := s.repo.ListForDate(ctx, facilityID, truncateToDay(date))
	if err != nil {
		return nil, err
	}
	return BookedIntervals(bookings), nil
}

func (s *service) AvailableSlots(ctx context.Context, facilityID string, date time.Time) ([]Interval, error) {
	fac, err := s.facilities.GetByID(ctx, facilityID)
	if err != nil {
		return nil, err
	}
	if !fac.IsBookable() {
		return []Interval{}, nil
	}

	booked, err := s.ListBookedSlots(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	day := truncateToDay(date)
	open, err := time.Parse("15:04", fac.OpenTime)
	if err != nil {
		return nil, facility.ErrInvalidHours
	}
	close, err := time.Parse("15:04", fac.CloseTime)
	if err != nil {
		return nil, facility.ErrInvalidHours
	}

	return FreeSlots(CombineDateTime(day, open), CombineDateTime(day, close), booked), nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (*Booking, error) {
	if !ValidPaymentStatus(status) {
		return nil, ErrInvalidTransition
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Forward-only: unpaid -> paid -> refunded. The external payment flow
	// drives these; the core only guards ordering.
	allowed := (b.PaymentStatus == PaymentUnpaid && status == PaymentPaid) ||
		(b.PaymentStatus == PaymentPaid && status == PaymentRefunded)
	if !allowed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.PaymentStatus = status
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateCreateRequest(req *CreateRequest) error {
	if strings.TrimSpace(req.RequesterName) == "" {
		return NewValidationError("requester_name", "is required")
	}
	email := strings.TrimSpace(req.RequesterEmail)
	if email == "" {
		return NewValidationError("requester_email", "is required")
	}
	if !emailPattern.MatchString(email) {
		return NewValidationError("requester_email", "is not a valid email address")
	}
	if req.FacilityID == "" {
		return NewValidationError("facility_id", "is required")
	}
	if req.BookingDate.IsZero() {
		return NewValidationError("booking_date", "is required")
	}
	if req.StartTime.IsZero() {
		return NewValidationError("start_time", "is required")
	}
	if req.EndTime.IsZero() {
		return NewValidationError("end_time", "is required")
	}
	if req.Attendees != nil && *req.Attendees <= 0 {
		return NewValidationError("attendees", "must be a positive integer")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
