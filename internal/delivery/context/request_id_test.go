package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestBind(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products", nil), rec)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	Bind(c, "req-7", logger)

	assert.Equal(t, "req-7", RequestID(c))
	assert.Equal(t, "req-7", rec.Header().Get(HeaderXRequestID))
	assert.Equal(t, "req-7", RequestIDFromContext(c.Request().Context()))
	assert.Same(t, logger, Logger(c.Request().Context(), slog.New(slog.DiscardHandler)))
}

func TestRequestID_FallsBackToHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(HeaderXRequestID, "from-client")

	assert.Equal(t, "from-client", RequestID(e.NewContext(req, httptest.NewRecorder())))
}

func TestRequestID_EmptyWithoutBindOrHeader(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, RequestID(c))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestLogger_Fallback(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, Logger(context.Background(), fallback))
}
