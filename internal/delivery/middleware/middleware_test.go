package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newLoggedEcho mounts the request-id and access-log middleware in server order and
// returns the JSON log lines written during each request.
func newLoggedEcho(debug bool) (*echo.Echo, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	return e, &buf
}

func serve(e *echo.Echo, method, target string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func TestRequestIDMiddleware_KeepsWellFormedInboundID(t *testing.T) {
	e, _ := newLoggedEcho(false)
	var seen string
	e.GET("/api/products/:id", func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	})

	rec := serve(e, http.MethodGet, "/api/products/"+uuid.NewString(), deliverycontext.HeaderXRequestID, "checkout-42")

	assert.Equal(t, "checkout-42", seen)
	assert.Equal(t, "checkout-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesMalformedInboundID(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "missing", id: ""},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters", id: "abc\ninjected=1"},
		{name: "spaces", id: "two words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newLoggedEcho(false)
			e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{tt.id}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "expected a generated UUID, got %q", got)
		})
	}
}

func TestLoggerMiddleware_DebugLogsRouteAndEntity(t *testing.T) {
	e, buf := newLoggedEcho(true)
	id := uuid.NewString()
	e.GET("/api/products/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "lamp")
	})

	serve(e, http.MethodGet, "/api/products/"+id+"?fields=price", deliverycontext.HeaderXRequestID, "req-1")

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "HTTP request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/api/products/:id", line["route"])
	assert.Equal(t, "/api/products/"+id, line["path"])
	assert.Equal(t, id, line["entity_id"])
	assert.Equal(t, "fields=price", line["query"])
	assert.InDelta(t, http.StatusOK, line["status"], 0)
	assert.InDelta(t, 4, line["bytes_out"], 0)
}

func TestLoggerMiddleware_OutsideDebugLogsOnlyServerErrors(t *testing.T) {
	e, buf := newLoggedEcho(false)
	e.GET("/api/users/:userId", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/categories/:id", func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "lookup")
	})
	e.GET("/api/investments/:id", func(c echo.Context) error {
		return errors.New("connection refused")
	})

	serve(e, http.MethodGet, "/api/users/"+uuid.NewString())
	serve(e, http.MethodGet, "/api/categories/"+uuid.NewString())
	serve(e, http.MethodGet, "/api/investments/inv-9")

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, "/api/investments/:id", lines[0]["route"])
	assert.Equal(t, "inv-9", lines[0]["entity_id"])
	assert.InDelta(t, http.StatusInternalServerError, lines[0]["status"], 0)
	assert.Equal(t, "connection refused", lines[0]["error"])
}

func TestStatusOf_UnwrittenErrors(t *testing.T) {
	e := echo.New()
	newContext := func() echo.Context {
		return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	}

	assert.Equal(t, http.StatusNotFound, statusOf(newContext(), errors.Wrap(domainerrors.ErrProductNotFound, "get")))
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(newContext(), echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, statusOf(newContext(), errors.New("boom")))

	c := newContext()
	require.NoError(t, c.NoContent(http.StatusAccepted))
	assert.Equal(t, http.StatusAccepted, statusOf(c, nil))
}
