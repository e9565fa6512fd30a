package handlers

import (
	"errors"
	"net/http"
	"strings"

	"farida_law_site_go/logger"
	"farida_law_site_go/templates"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HTTPErrorHandler renders the not-found page for unknown pages, JSON for the
// API, and plain text for everything else
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = http.StatusText(code)
		if m, ok := he.Message.(string); ok && m != "" {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	var respErr error
	switch {
	case c.Request().Method == http.MethodHead:
		respErr = c.NoContent(code)
	case strings.HasPrefix(c.Request().URL.Path, "/api/"):
		respErr = c.JSON(code, map[string]any{"ok": false, "error": msg})
	case code == http.StatusNotFound:
		respErr = renderNotFound(c)
	default:
		respErr = c.String(code, msg)
	}
	if respErr != nil {
		logger.Error("failed to write error response", zap.Error(respErr))
	}
}

func renderNotFound(c echo.Context) error {
	component, err := templates.Page(templates.PageNotFound, newPageData(c, templates.PageNotFound))
	if err != nil {
		return c.String(http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
	return render(c, http.StatusNotFound, component)
}
