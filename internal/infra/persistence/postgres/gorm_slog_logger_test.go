package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func query(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

// requestContext returns a context carrying a request-scoped logger writing to buf.
func requestContext(buf *bytes.Buffer, requestID string) context.Context {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	deliverycontext.Bind(c, requestID, slog.New(slog.NewTextHandler(buf, nil)).With(slog.String("request_id", requestID)))

	return c.Request().Context()
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	l.Trace(context.Background(), time.Now().Add(-20*time.Millisecond), query("SELECT 1", 1), nil)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now().Add(-80*time.Millisecond), query(`SELECT * FROM "products"`, 3), nil)
	assert.Contains(t, buf.String(), "Slow database query")
	assert.Contains(t, buf.String(), "slow_threshold=50ms")
	assert.Contains(t, buf.String(), "rows=3")
}

func TestGormSlogLogger_DefaultSlowThreshold(t *testing.T) {
	l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{Postgres: &config.PostgresConfig{}})

	assert.Equal(t, defaultSlowQueryThreshold, l.(*gormSlogLogger).slowThreshold)
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), nil)

	ctx := requestContext(&scoped, "req-99")
	l.Trace(ctx, time.Now(), query(`UPDATE "products" SET price=42`, 0), errors.New("deadlock detected"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "Database query failed")
	assert.Contains(t, scoped.String(), "request_id=req-99")
	assert.Contains(t, scoped.String(), "deadlock detected")
}

func TestGormSlogLogger_RecordNotFoundIsNotAFailure(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	l.Trace(context.Background(), time.Now(), query(`SELECT * FROM "categories" WHERE id = $1`, 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_DebugLogsEveryQuery(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

	l.Trace(context.Background(), time.Now(), query(`SELECT count(*) FROM "users"`, 1), nil)
	assert.Contains(t, buf.String(), "Database query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), query("SELECT 1", 1), errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), query("SELECT 1", 1), nil)
	assert.Contains(t, buf.String(), "Database query")
}
