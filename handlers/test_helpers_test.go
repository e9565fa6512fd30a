package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"farida_law_site_go/config"
	"farida_law_site_go/models"
	"farida_law_site_go/services"

	"github.com/labstack/echo/v4"
)

func setupServices(t *testing.T) {
	t.Helper()
	services.InitializeChallenges(time.Minute)
	services.InitializeInflight(time.Minute)
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config and site content to context
	c.Set("config", &config.Config{
		Environment:     "test",
		DeliveryTimeout: 5 * time.Second,
	})
	c.Set("site", models.DefaultSite())
	c.Set("csrf", "test-csrf")

	return e, c, rec
}

// setupFormPost builds a urlencoded POST
func setupFormPost(path string, form url.Values) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return e, c, rec
}

func withEndpoints(c echo.Context, contact, intake string) {
	cfg := c.Get("config").(*config.Config)
	cfg.ContactEndpoint = contact
	cfg.IntakeEndpoint = intake
}
