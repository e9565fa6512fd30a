package services

import (
	"farida_law_site_go/models"
	"farida_law_site_go/templates/components"
)

const schemaContext = "https://schema.org"

// LegalServiceJSONLD describes the firm as a schema.org LegalService
func LegalServiceJSONLD(site *models.Site) string {
	a := site.Contact.Address
	doc := map[string]any{
		"@context":    schemaContext,
		"@type":       "LegalService",
		"name":        site.LegalName,
		"url":         site.URL,
		"description": site.Description,
		"telephone":   site.Contact.PhoneE164,
		"email":       site.Contact.Email,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   a.StreetAddress,
			"addressLocality": a.AddressLocality,
			"addressRegion":   a.AddressRegion,
			"postalCode":      a.PostalCode,
			"addressCountry":  a.AddressCountry,
		},
		"areaServed": []map[string]any{
			{"@type": "City", "name": a.AddressLocality},
			{"@type": "AdministrativeArea", "name": "San Diego County"},
			{"@type": "State", "name": a.AddressRegion},
		},
		"image": []string{site.URL + site.OGImage},
	}
	return components.JSON(doc)
}

// ReviewsJSONLD describes the reviews page and the testimonials shown on it
func ReviewsJSONLD(site *models.Site, canonical string) string {
	items := make([]map[string]any, 0, len(site.Testimonials))
	for i, t := range site.Testimonials {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item": map[string]any{
				"@type":      "Review",
				"reviewBody": t.Quote,
				"author":     map[string]any{"@type": "Person", "name": t.Name},
			},
		})
	}

	doc := map[string]any{
		"@context": schemaContext,
		"@type":    "WebPage",
		"@id":      canonical,
		"name":     "Client Reviews | " + site.Name,
		"url":      canonical,
		"isPartOf": map[string]any{"@type": "WebSite", "name": site.Name, "url": site.URL},
		"about":    map[string]any{"@type": "LegalService", "name": site.LegalName, "url": site.URL},
		"mainEntity": map[string]any{
			"@type":           "ItemList",
			"name":            "Client Reviews",
			"itemListElement": items,
		},
	}
	return components.JSON(doc)
}
