package user

import (
	"net/http"
	"time"

	"github.com/tidegrove/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(apperror.KindNotFound, http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(apperror.KindValidation, http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(apperror.KindValidation, http.StatusUnauthorized, "invalid email or password")
	ErrInactiveUser       = apperror.New(apperror.KindPermissionDenied, http.StatusForbidden, "user is inactive")
)

// User represents a back-office staff account.
type User struct {
	ID            string // UUID
	Email         string
	PasswordHash  string
	DisplayName   *string
	CreatedAt     time.Time
	LastLoginAt   *time.Time
	IsActive      bool
	IsSystemAdmin bool
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	IsActive *bool // Pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
