package apperror

// Kind is a machine-readable category for an error, so API clients can
// branch on the failure class instead of parsing messages.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindInvalidTimeRange    Kind = "invalid_time_range"
	KindFacilityUnavailable Kind = "facility_unavailable"
	KindSlotConflict        Kind = "slot_conflict"
	KindDuplicateCode       Kind = "duplicate_code"
	KindNotFound            Kind = "not_found"
	KindPermissionDenied    Kind = "permission_denied"
	KindStoreUnavailable    Kind = "store_unavailable"
)

// AppError is a custom error type that includes an HTTP status code,
// an error kind, and an optional structured detail payload.
type AppError struct {
	Kind    Kind   // Machine-readable error category
	Code    int    // HTTP Status Code (e.g., 400, 409)
	Message string // User-facing error message
	Details any    // Optional structured payload (e.g., conflicting slots)
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with a kind, status code and message.
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new AppError wrapping an existing error.
func Wrap(err error, kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// WithDetails returns a copy of the error carrying a structured detail payload.
// The receiver is kept as the wrapped error so errors.Is against the sentinel
// still matches through Unwrap.
func (e *AppError) WithDetails(details any) *AppError {
	return &AppError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Err:     e,
	}
}

// WithMessage returns a copy of the error with a more specific message.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Kind:    e.Kind,
		Code:    e.Code,
		Message: message,
		Details: e.Details,
		Err:     e,
	}
}
