package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidegrove/facility-booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Kind    apperror.Kind `json:"kind,omitempty"`
	Details any           `json:"details,omitempty"`
}

// Error sends a JSON error response.
// It checks if the error is an AppError to determine the status code and kind.
// Anything else is treated as a store/system failure: the client gets a generic
// message and no internal detail.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{
			Error:   appErr.Message,
			Kind:    appErr.Kind,
			Details: appErr.Details,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "service temporarily unavailable, please try again",
		Kind:  apperror.KindStoreUnavailable,
	})
}
