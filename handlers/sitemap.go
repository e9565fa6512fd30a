package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"farida_law_site_go/templates"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// sitemapPages lists the indexable pages in sitemap order
var sitemapPages = []struct {
	page       string
	changeFreq string
	priority   float32
}{
	{templates.PageHome, "weekly", 1.0},
	{templates.PagePractice, "monthly", 0.9},
	{templates.PageConsultation, "monthly", 0.9},
	{templates.PageIntake, "monthly", 0.8},
	{templates.PageAbout, "monthly", 0.8},
	{templates.PageReviews, "monthly", 0.7},
}

// GetSitemapHandler generates the XML sitemap from the canonical page URLs
func GetSitemapHandler(c echo.Context) error {
	site := getSite(c)

	urls := make([]SitemapURL, 0, len(sitemapPages))
	for _, p := range sitemapPages {
		urls = append(urls, SitemapURL{
			Loc:        absoluteURL(site, pagePath[p.page]),
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt pointing crawlers at the sitemap
func GetRobotsHandler(c echo.Context) error {
	site := getSite(c)

	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + absoluteURL(site, "/sitemap.xml") + "\n")

	return c.String(http.StatusOK, b.String())
}
