package handlers

import (
	"errors"
	"net/http"

	"farida_law_site_go/logger"
	"farida_law_site_go/metrics"
	"farida_law_site_go/models"
	"farida_law_site_go/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ValidationError represents a single invalid field of a relayed lead
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []ValidationError {
	var out []ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			out = append(out, ValidationError{
				Field:   fieldError.Field(),
				Message: validationMessage(fieldError),
			})
		}
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "datetime":
		return fe.Field() + " must match " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// LeadRelayHandler accepts a delivered lead payload and forwards it to the
// office inbox by email. It is the receiving end a form endpoint can point at.
func LeadRelayHandler(c echo.Context) error {
	cfg := getConfig(c)
	if !cfg.LeadRelayEnabled {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	var lead models.LeadPayload
	if err := c.Bind(&lead); err != nil {
		metrics.RelayMessages.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": "Invalid request body",
		})
	}

	if err := services.Validator().Struct(&lead); err != nil {
		metrics.RelayMessages.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, map[string]any{
			"ok":     false,
			"error":  "Validation failed",
			"fields": ParseValidationErrors(err),
		})
	}

	if err := services.RelayLead(cfg, &lead); err != nil {
		metrics.RelayMessages.WithLabelValues("failed").Inc()
		logger.Error("failed to relay lead",
			zap.String("type", lead.Type),
			zap.String("page", lead.Page),
			zap.Error(err),
		)
		return c.JSON(http.StatusBadGateway, map[string]any{
			"ok":    false,
			"error": "Could not forward the lead",
		})
	}

	metrics.RelayMessages.WithLabelValues("accepted").Inc()
	logger.Info("lead relayed", zap.String("type", lead.Type), zap.String("page", lead.Page))
	return c.JSON(http.StatusAccepted, map[string]any{"ok": true})
}
