package handlers

import (
	"net/http"

	"farida_law_site_go/models"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports liveness and which lead endpoints are configured.
// Endpoint values are never echoed.
func HealthHandler(c echo.Context) error {
	cfg := getConfig(c)

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"forms": map[string]bool{
			string(models.FormConsultation): cfg.EndpointFor(string(models.FormConsultation)) != "",
			string(models.FormIntake):       cfg.EndpointFor(string(models.FormIntake)) != "",
		},
		"relay": cfg.LeadRelayEnabled,
	})
}
