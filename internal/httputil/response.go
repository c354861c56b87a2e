// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/brightstone/gemgate/internal/errors"
)

// genericErrorMessage is the fixed message returned for non-validation failures.
// Diagnostic detail stays in server-side logs and is never echoed to the caller.
const genericErrorMessage = "something went wrong, please try again later"

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and returns a JSON response.
// Validation failures are reported back to the caller with detail; every other
// failure (authentication, supplier, checkout, unknown) becomes a generic 500.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var errorResponse ErrorResponse

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errorResponse = ErrorResponse{
			Error:   "invalid_input",
			Message: err.Error(),
		}

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		errorResponse = ErrorResponse{
			Error:   "not_found",
			Message: "The requested resource was not found",
		}

	default:
		statusCode = http.StatusInternalServerError
		errorResponse = ErrorResponse{
			Error:   "internal_error",
			Message: genericErrorMessage,
		}
	}

	if logger != nil {
		if statusCode == http.StatusInternalServerError {
			logger.Error("request failed",
				slog.Any("error", err),
				slog.Int("status_code", statusCode),
			)
		} else {
			logger.Warn("request rejected",
				slog.Any("error", err),
				slog.Int("status_code", statusCode),
			)
		}
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBindingErrorGin writes a 400 Bad Request response for JSON binding errors.
func HandleBindingErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("request binding failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: "request body could not be parsed",
	})
}

// HandleValidationErrorGin writes a 400 Bad Request response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
