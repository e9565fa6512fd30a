package handlers

import (
	"fmt"
	"strings"

	"farida_law_site_go/models"
	"farida_law_site_go/services"
	"farida_law_site_go/templates"
)

const titleTemplate = "%s | %s"

var siteKeywords = []string{
	"Personal injury attorney San Diego",
	"Personal injury lawyer El Cajon",
	"Car accident attorney San Diego",
	"Motorcycle accident lawyer San Diego",
	"Truck accident attorney San Diego",
	"Slip and fall lawyer San Diego",
	"Wrongful death attorney San Diego",
	"Injury lawyer San Diego County",
	"Crystal Farida attorney",
	"Farida Law SD",
}

// pagePath is the canonical path of each page
var pagePath = map[string]string{
	templates.PageHome:         "/",
	templates.PageAbout:        "/about/",
	templates.PagePractice:     "/practice-areas/",
	templates.PageReviews:      "/reviews/",
	templates.PageConsultation: "/consultation-request/",
	templates.PageIntake:       "/client-intake/",
}

// SEO configurations for public pages. Title is the page part only; the site
// name is appended by GetSEO. An empty Title means the bare site name.
var pageSEO = map[string]*models.SEO{
	templates.PageHome: {
		Description: "Farida Law SD provides clear, professional legal guidance with a client-first approach. Request a consultation or submit your details through our secure intake form.",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	templates.PageAbout: {
		Title:       "About Attorney",
		Description: "Meet Crystal Farida, personal injury attorney serving El Cajon and San Diego County with clear communication and steady advocacy.",
		OGType:      "profile",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	templates.PagePractice: {
		Title:       "Practice Areas",
		Description: "Car accidents, motorcycle and truck crashes, slip and fall, and wrongful death. Personal injury representation in San Diego County.",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	templates.PageReviews: {
		Title:       "Client Reviews",
		Description: "Read client reviews for Farida Law SD. Professional, responsive personal injury representation in El Cajon and San Diego County.",
		OGType:      "website",
		TwitterCard: "summary_large_image",
		Locale:      "en_US",
	},
	templates.PageConsultation: {
		Title:       "Request a Consultation",
		Description: "Request a consultation with Farida Law SD. Send a short message and your contact details and we will follow up.",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en_US",
	},
	templates.PageIntake: {
		Title:       "Client Intake Form",
		Description: "Share initial details about your injury so Farida Law SD can review your case efficiently.",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en_US",
	},
	templates.PageNotFound: {
		Title:       "Page Not Found",
		Description: "The page you are looking for does not exist.",
		OGType:      "website",
		TwitterCard: "summary",
		Locale:      "en_US",
		NoIndex:     true,
	},
}

// GetSEO returns the SEO configuration for a page, expanded for site.
// Every page carries the LegalService JSON-LD; the reviews page also
// describes its testimonials.
func GetSEO(page string, site *models.Site) *models.SEO {
	base, ok := pageSEO[page]
	if !ok {
		return nil
	}
	// Return a copy to avoid mutations
	seo := *base
	seo.JSONLD = nil

	if seo.Title == "" {
		seo.Title = site.Name
	} else {
		seo.Title = fmt.Sprintf(titleTemplate, seo.Title, site.Name)
	}
	seo.SiteName = site.Name
	seo.WithKeywords(siteKeywords...)

	if site.OGImage != "" {
		seo.WithOGImage(absoluteURL(site, site.OGImage), site.Name)
	}

	if path, ok := pagePath[page]; ok {
		seo.WithCanonical(absoluteURL(site, path))
	}

	seo.WithJSONLD(services.LegalServiceJSONLD(site))
	if page == templates.PageReviews {
		seo.WithJSONLD(services.ReviewsJSONLD(site, seo.Canonical))
	}
	return &seo
}

func absoluteURL(site *models.Site, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(site.URL, "/") + path
}
