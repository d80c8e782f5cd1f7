package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailsKeepsSentinelIdentity(t *testing.T) {
	sentinel := New(KindSlotConflict, http.StatusConflict, "time slot already booked")

	wrapped := sentinel.WithDetails([]string{"14:00-15:00"})

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, KindSlotConflict, wrapped.Kind)
	assert.Equal(t, http.StatusConflict, wrapped.Code)
	assert.Equal(t, []string{"14:00-15:00"}, wrapped.Details)
}

func TestWithMessageKeepsSentinelIdentity(t *testing.T) {
	sentinel := New(KindValidation, http.StatusBadRequest, "opening hours must be HH:MM")

	wrapped := sentinel.WithMessage(`invalid open_time "9am"`)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.Equal(t, `invalid open_time "9am"`, wrapped.Error())
	assert.Equal(t, sentinel.Kind, wrapped.Kind)
}

func TestWrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, KindStoreUnavailable, http.StatusInternalServerError, "store unavailable")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "store unavailable", err.Error())
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	sentinel := New(KindNotFound, http.StatusNotFound, "booking not found")
	var appErr *AppError

	require.True(t, errors.As(sentinel.WithDetails(nil), &appErr))
	assert.Equal(t, KindNotFound, appErr.Kind)
}
