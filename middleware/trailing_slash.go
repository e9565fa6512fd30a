package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// PageTrailingSlash redirects page URLs to their trailing-slash form
// (/about -> /about/) so every page has exactly one canonical address.
// Assets, API, and operational endpoints are left alone.
func PageTrailingSlash() echo.MiddlewareFunc {
	return echomiddleware.AddTrailingSlashWithConfig(echomiddleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper: func(c echo.Context) bool {
			return !isPagePath(c.Request().URL.Path)
		},
	})
}

func isPagePath(p string) bool {
	if p == "" || p == "/" {
		return false
	}
	for _, prefix := range []string{"/static/", "/api/", "/metrics", "/healthz"} {
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}
	// sitemap.xml, robots.txt, favicon.ico
	return path.Ext(p) == ""
}
