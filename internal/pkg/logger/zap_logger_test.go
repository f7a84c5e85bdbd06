package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &ZapLogger{Logger: zap.New(core)}, logs
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			zl, logs := observed()
			zl.LogHTTPRequest(nil, HTTPRequest{Method: "GET", Path: "/x", Status: tt.status, Latency: time.Millisecond})

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, "/x", entry.ContextMap()["path"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	zl, logs := observed()
	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/boom", func(c echo.Context) error {
		c.Set("user_id", "u-1")
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom?a=1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/boom?a=1", fields["path"])
	assert.Equal(t, "u-1", fields["user_id"])
	assert.EqualValues(t, http.StatusBadRequest, fields["status"])
}

func TestGlobalLoggerFallback(t *testing.T) {
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
	Info("no panic", Err(errors.New("x")))
}
