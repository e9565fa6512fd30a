package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCSRFToken(t *testing.T) {
	e := echo.New()

	t.Run("TokenExists", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", "test-csrf-token")
		assert.Equal(t, "test-csrf-token", GetCSRFToken(c))
	})

	t.Run("TokenMissing", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		assert.Equal(t, "", GetCSRFToken(c))
	})

	t.Run("TokenInvalidType", func(t *testing.T) {
		c := e.NewContext(nil, nil)
		c.Set("csrf", 123)
		assert.Equal(t, "", GetCSRFToken(c))
	})
}

func TestSkipCSRF(t *testing.T) {
	e := echo.New()
	cases := map[string]bool{
		"/api/leads":             true,
		"/static/css/style.css":  true,
		"/healthz":               true,
		"/metrics":               true,
		"/consultation-request/": false,
		"/client-intake/":        false,
		"/":                      false,
	}
	for path, want := range cases {
		c := e.NewContext(httptest.NewRequest(http.MethodPost, path, nil), httptest.NewRecorder())
		assert.Equal(t, want, skipCSRF(c), path)
	}
}

func TestCSRF(t *testing.T) {
	e := echo.New()
	mw := CSRF(false)
	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, GetCSRFToken(c))
	})

	t.Run("GET issues a token and cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/consultation-request/", nil), rec)

		require.NoError(t, handler(c))
		assert.NotEmpty(t, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "_csrf="+rec.Body.String())
		assert.Contains(t, rec.Header().Get("Set-Cookie"), "SameSite=Lax")
	})

	t.Run("POST with matching token passes", func(t *testing.T) {
		form := url.Values{"_csrf": {"tok123"}}
		req := httptest.NewRequest(http.MethodPost, "/consultation-request/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(&http.Cookie{Name: "_csrf", Value: "tok123"})
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("POST without token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/consultation-request/", strings.NewReader("fullName=x"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.AddCookie(&http.Cookie{Name: "_csrf", Value: "tok123"})

		assert.Error(t, handler(e.NewContext(req, httptest.NewRecorder())))
	})

	t.Run("Relay is exempt", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		assert.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	})
}
