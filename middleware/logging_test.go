package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farida_law_site_go/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })
	return logs
}

func TestRequestLogger(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "home") })
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/broken/", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "boom")
	})

	t.Run("Successful request logs at info", func(t *testing.T) {
		logs := observeLogs(t)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.InfoLevel, entry.Level)
		assert.Equal(t, "/", entry.ContextMap()["uri"])
		assert.EqualValues(t, http.StatusOK, entry.ContextMap()["status"])
	})

	t.Run("Handler error logs at error", func(t *testing.T) {
		logs := observeLogs(t)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
	})

	t.Run("Health checks are not logged", func(t *testing.T) {
		logs := observeLogs(t)
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, 0, logs.Len())
	})
}
