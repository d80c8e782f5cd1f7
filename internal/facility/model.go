package facility

import (
	"net/http"
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(apperror.KindNotFound, http.StatusNotFound, "facility not found")
	ErrEmptyName       = apperror.New(apperror.KindValidation, http.StatusBadRequest, "name cannot be empty")
	ErrInvalidCategory = apperror.New(apperror.KindValidation, http.StatusBadRequest, "invalid facility category")
	ErrInvalidStatus   = apperror.New(apperror.KindValidation, http.StatusBadRequest, "invalid facility status")
	ErrInvalidHours    = apperror.New(apperror.KindValidation, http.StatusBadRequest, "opening hours must be HH:MM with close after open")
)

// Category classifies what kind of shared resource a facility is.
type Category string

const (
	CategorySports   Category = "sports"
	CategoryMeeting  Category = "meeting"
	CategoryWellness Category = "wellness"
	CategoryOther    Category = "other"
)

// Status is the operational state of a facility.
// Bookings are only accepted while the facility is available or occupied.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
	StatusClosed      Status = "closed"
)

// Facility represents a bookable shared resource (e.g., Pool, Court 2, Meeting Room A).
type Facility struct {
	ID          string
	Name        string
	Category    Category
	Status      Status
	OpenTime    string // Format: HH:MM
	CloseTime   string // Format: HH:MM
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable reports whether new bookings may be created for the facility.
func (f *Facility) IsBookable() bool {
	return f.Status != StatusMaintenance && f.Status != StatusClosed
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategorySports, CategoryMeeting, CategoryWellness, CategoryOther:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the known operational states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance, StatusClosed:
		return true
	}
	return false
}

// Filter defines parameters for listing facilities.
type Filter struct {
	Category string
	Status   string
	Keyword  string // Search in Name or Description
	Page     int
	PageSize int
}
