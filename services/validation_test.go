package services

import (
	"testing"

	"farida_law_site_go/models"

	"github.com/stretchr/testify/assert"
)

func validConsultation() models.FormValues {
	return models.FormValues{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "619-555-1234",
		Message:  "I was rear-ended last week.",
	}
}

func validIntake() models.FormValues {
	return models.FormValues{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		Phone:         "(619) 555-1234",
		CaseType:      "Dog Bite",
		IncidentDate:  "2026-09-30",
		Message:       "Bitten by a neighbor's dog while walking home.",
		CaptchaAnswer: "7",
	}
}

func TestValidateConsultation(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		v := validConsultation()
		assert.Empty(t, ValidateForm(models.FormConsultation, &v))
	})

	t.Run("Case type optional", func(t *testing.T) {
		v := validConsultation()
		v.CaseType = ""
		assert.Empty(t, ValidateForm(models.FormConsultation, &v))
		v.CaseType = "Something else entirely"
		assert.Empty(t, ValidateForm(models.FormConsultation, &v))
	})

	t.Run("All fields fail with distinct messages", func(t *testing.T) {
		v := models.FormValues{FullName: "J", Email: "jo@x", Phone: "123", Message: "hi"}
		errs := ValidateForm(models.FormConsultation, &v)

		assert.Len(t, errs, 4)
		assert.Equal(t, "Please enter your name.", errs["fullName"])
		assert.Equal(t, "Please enter a valid email.", errs["email"])
		assert.Equal(t, "Please enter a valid phone number.", errs["phone"])
		assert.Equal(t, "Please add a short message.", errs["message"])
	})

	t.Run("Two character name is accepted", func(t *testing.T) {
		v := validConsultation()
		v.FullName = "Jo"
		assert.False(t, ValidateForm(models.FormConsultation, &v).Has("fullName"))
	})

	t.Run("Honeypot has no rule", func(t *testing.T) {
		v := validConsultation()
		v.Website = "http://spam.example"
		assert.Empty(t, ValidateForm(models.FormConsultation, &v))
	})
}

func TestValidateIntake(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		v := validIntake()
		assert.Empty(t, ValidateForm(models.FormIntake, &v))
	})

	t.Run("Incident date optional", func(t *testing.T) {
		v := validIntake()
		v.IncidentDate = ""
		assert.Empty(t, ValidateForm(models.FormIntake, &v))
	})

	t.Run("Phone must be fully formatted", func(t *testing.T) {
		v := validIntake()
		v.Phone = "6195551234"
		assert.True(t, ValidateForm(models.FormIntake, &v).Has("phone"))

		v.Phone = "(619) 555-123"
		assert.True(t, ValidateForm(models.FormIntake, &v).Has("phone"))

		v.Phone = "(619)-555-12345"
		assert.True(t, ValidateForm(models.FormIntake, &v).Has("phone"))
	})

	t.Run("Case type must be enumerated", func(t *testing.T) {
		v := validIntake()
		v.CaseType = "Immigration"
		errs := ValidateForm(models.FormIntake, &v)
		assert.Equal(t, "Please select an injury type.", errs["caseType"])

		v.CaseType = ""
		assert.True(t, ValidateForm(models.FormIntake, &v).Has("caseType"))
	})

	t.Run("Message needs twenty characters", func(t *testing.T) {
		v := validIntake()
		v.Message = "Too short a story."
		errs := ValidateForm(models.FormIntake, &v)
		assert.Equal(t, "Please add more details (20+ characters).", errs["message"])
	})

	t.Run("Challenge answer presence", func(t *testing.T) {
		v := validIntake()
		v.CaptchaAnswer = ""
		errs := ValidateForm(models.FormIntake, &v)
		assert.Equal(t, "Please answer the question.", errs["captchaAnswer"])
	})

	t.Run("Bad incident date", func(t *testing.T) {
		v := validIntake()
		v.IncidentDate = "09/30/2026"
		assert.True(t, ValidateForm(models.FormIntake, &v).Has("incidentDate"))
	})
}

func TestSchemaFor(t *testing.T) {
	assert.Len(t, SchemaFor(models.FormConsultation), 5)
	assert.Len(t, SchemaFor(models.FormIntake), 7)
}
