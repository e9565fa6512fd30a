package services

import (
	"encoding/json"
	"testing"

	"farida_law_site_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalServiceJSONLD(t *testing.T) {
	site := models.DefaultSite()

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(LegalServiceJSONLD(site)), &doc))

	assert.Equal(t, "LegalService", doc["@type"])
	assert.Equal(t, "+16195995129", doc["telephone"])
	address := doc["address"].(map[string]any)
	assert.Equal(t, "El Cajon", address["addressLocality"])
	assert.Len(t, doc["areaServed"], 3)
	assert.Equal(t, []any{"https://faridalawsd.com/static/images/og.png"}, doc["image"])
}

func TestReviewsJSONLD(t *testing.T) {
	site := models.DefaultSite()
	canonical := "https://faridalawsd.com/reviews/"

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(ReviewsJSONLD(site, canonical)), &doc))

	assert.Equal(t, "WebPage", doc["@type"])
	assert.Equal(t, canonical, doc["@id"])

	list := doc["mainEntity"].(map[string]any)["itemListElement"].([]any)
	require.Len(t, list, len(site.Testimonials))
	first := list[0].(map[string]any)
	assert.EqualValues(t, 1, first["position"])
	review := first["item"].(map[string]any)
	assert.Equal(t, site.Testimonials[0].Quote, review["reviewBody"])
}
