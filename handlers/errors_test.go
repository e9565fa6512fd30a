package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("Unknown page renders not found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/nope/", nil)

		HTTPErrorHandler(echo.ErrNotFound, c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page not found")
		assert.Contains(t, rec.Body.String(), `content="noindex, nofollow"`)
	})

	t.Run("API errors are JSON", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPost, "/api/leads", nil)

		HTTPErrorHandler(echo.NewHTTPError(http.StatusTooManyRequests, "Rate limit exceeded"), c)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Rate limit exceeded"}`, rec.Body.String())
	})

	t.Run("Plain errors are internal", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/about/", nil)

		HTTPErrorHandler(errors.New("boom"), c)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("HEAD has no body", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodHead, "/nope/", nil)

		HTTPErrorHandler(echo.ErrNotFound, c)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Committed responses are left alone", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/", nil)
		require.NoError(t, c.String(http.StatusOK, "done"))

		HTTPErrorHandler(errors.New("late"), c)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}

func TestHealthHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/healthz", nil)
	withEndpoints(c, "https://hooks.example/contact", "")

	require.NoError(t, HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","forms":{"contact":true,"client_intake":false},"relay":false}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "hooks.example")
}
