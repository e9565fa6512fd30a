package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)

	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/xml")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, xml.Header))

	var set SitemapURLSet
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(body, xml.Header)), &set))
	assert.Equal(t, "http://www.sitemaps.org/schemas/sitemap/0.9", set.Xmlns)
	require.Len(t, set.URLs, 6)
	assert.Equal(t, "https://faridalawsd.com/", set.URLs[0].Loc)

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
		assert.True(t, strings.HasSuffix(u.Loc, "/"), u.Loc)
	}
	assert.Contains(t, locs, "https://faridalawsd.com/client-intake/")
	assert.Contains(t, locs, "https://faridalawsd.com/reviews/")
}

func TestGetRobotsHandler(t *testing.T) {
	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)

	require.NoError(t, GetRobotsHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User-agent: *")
	assert.Contains(t, rec.Body.String(), "Disallow: /api/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://faridalawsd.com/sitemap.xml")
}
