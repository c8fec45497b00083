package middleware

import (
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client-supplied ids before they reach logs and events.
const maxRequestIDLength = 64

// RequestIDMiddleware assigns each request an id and a logger scoped to it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process keeps a well-formed inbound X-Request-Id or mints a UUID. The scoped
// logger carries the id together with the matched route template.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.New().String()
		}

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("route", routeOf(c)),
		)
		deliverycontext.Bind(c, requestID, reqLogger)

		return next(c)
	}
}

// validRequestID accepts short ids made of letters, digits, '-', '_', '.' and ':'.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}

func routeOf(c echo.Context) string {
	if route := c.Path(); route != "" {
		return route
	}

	return "unmatched"
}
