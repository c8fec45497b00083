package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Message   string `json:"message"`           // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Additional error context
	RequestID string `json:"requestId"`         // Request tracking ID
}

// Success returns the bare payload
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Message returns {"message": message}
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]any{"message": message})
}

// WithEntity returns {"message": message, key: entity}
func WithEntity(c echo.Context, statusCode int, message, key string, entity any) error {
	return c.JSON(statusCode, map[string]any{
		"message": message,
		key:       entity,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.RequestID(c),
	})
}

// BindingError returns a 400 for a body or query string that could not be decoded
func BindingError(c echo.Context) error {
	appErr := domainerrors.ErrInvalidInput

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
}

// HandleAppError writes 4xx application errors directly. Anything else is returned
// for the central HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
