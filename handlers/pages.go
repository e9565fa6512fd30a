package handlers

import (
	"bytes"
	"net/http"
	"time"

	"farida_law_site_go/config"
	"farida_law_site_go/middleware"
	"farida_law_site_go/models"
	"farida_law_site_go/templates"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// getConfig returns the config injected by the server middleware
func getConfig(c echo.Context) *config.Config {
	if cfg, ok := c.Get("config").(*config.Config); ok {
		return cfg
	}
	return &config.Config{}
}

// getSite returns the site content injected by the server middleware,
// falling back to the built-in content
func getSite(c echo.Context) *models.Site {
	if site, ok := c.Get("site").(*models.Site); ok && site != nil {
		return site
	}
	return models.DefaultSite()
}

// newPageData collects what every view needs for page
func newPageData(c echo.Context, page string) templates.PageData {
	site := getSite(c)
	ctx := c.Request().Context()

	return templates.PageData{
		SEO:        GetSEO(page, site),
		Site:       site,
		Path:       pagePath[page],
		Nonce:      middleware.GetNonce(ctx),
		CSRFToken:  middleware.GetCSRFToken(c),
		CSSVersion: middleware.GetCSSVersion(ctx),
		JSVersion:  middleware.GetFormsJSVersion(ctx),
		Year:       time.Now().Year(),
	}
}

// render writes a component as the HTML response. The page is rendered to a
// buffer first so a template error never leaves a half-written page.
func render(c echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

func renderPage(c echo.Context, page string) error {
	component, err := templates.Page(page, newPageData(c, page))
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, component)
}

// HomeHandler renders the landing page
func HomeHandler(c echo.Context) error {
	return renderPage(c, templates.PageHome)
}

// AboutHandler renders the attorney page
func AboutHandler(c echo.Context) error {
	return renderPage(c, templates.PageAbout)
}

// PracticeAreasHandler renders the practice area listing
func PracticeAreasHandler(c echo.Context) error {
	return renderPage(c, templates.PagePractice)
}

// ReviewsHandler renders the testimonials page with its review JSON-LD
func ReviewsHandler(c echo.Context) error {
	return renderPage(c, templates.PageReviews)
}
