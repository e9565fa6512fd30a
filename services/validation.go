package services

import (
	"reflect"
	"regexp"
	"strings"

	"farida_law_site_go/models"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown next to it
type FieldErrors map[string]string

// Has reports whether field has an error
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

// FieldRule is one predicate (a validator tag) and the message shown when it fails
type FieldRule struct {
	Tag     string
	Message string
}

// FieldSchema is the ordered rule list of one field. The first failing rule wins.
type FieldSchema struct {
	Field string
	Value func(v *models.FormValues) string
	Rules []FieldRule
}

var usPhonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report struct errors under their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("injury_type", func(fl validator.FieldLevel) bool {
		return models.IsValidInjuryType(fl.Field().String())
	})
	_ = v.RegisterValidation("us_phone", func(fl validator.FieldLevel) bool {
		return usPhonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validator returns the shared validator, including the custom
// injury_type and us_phone tags
func Validator() *validator.Validate {
	return validate
}

var consultationSchema = []FieldSchema{
	{Field: "fullName", Value: func(v *models.FormValues) string { return v.FullName }, Rules: []FieldRule{
		{Tag: "min=2", Message: "Please enter your name."},
	}},
	{Field: "email", Value: func(v *models.FormValues) string { return v.Email }, Rules: []FieldRule{
		{Tag: "email", Message: "Please enter a valid email."},
	}},
	{Field: "phone", Value: func(v *models.FormValues) string { return v.Phone }, Rules: []FieldRule{
		{Tag: "min=7", Message: "Please enter a valid phone number."},
	}},
	{Field: "caseType", Value: func(v *models.FormValues) string { return v.CaseType }, Rules: []FieldRule{
		{Tag: "omitempty,max=120", Message: "Please choose a shorter injury type."},
	}},
	{Field: "message", Value: func(v *models.FormValues) string { return v.Message }, Rules: []FieldRule{
		{Tag: "min=10", Message: "Please add a short message."},
	}},
}

var intakeSchema = []FieldSchema{
	{Field: "fullName", Value: func(v *models.FormValues) string { return v.FullName }, Rules: []FieldRule{
		{Tag: "min=2", Message: "Please enter your name."},
	}},
	{Field: "phone", Value: func(v *models.FormValues) string { return v.Phone }, Rules: []FieldRule{
		{Tag: "min=14", Message: "Please enter a valid phone number."},
		{Tag: "us_phone", Message: "Please enter a valid phone number."},
	}},
	{Field: "email", Value: func(v *models.FormValues) string { return v.Email }, Rules: []FieldRule{
		{Tag: "email", Message: "Please enter a valid email."},
	}},
	{Field: "caseType", Value: func(v *models.FormValues) string { return v.CaseType }, Rules: []FieldRule{
		{Tag: "injury_type", Message: "Please select an injury type."},
	}},
	{Field: "incidentDate", Value: func(v *models.FormValues) string { return v.IncidentDate }, Rules: []FieldRule{
		{Tag: "omitempty,datetime=2006-01-02", Message: "Please enter a valid date."},
	}},
	{Field: "message", Value: func(v *models.FormValues) string { return v.Message }, Rules: []FieldRule{
		{Tag: "min=20", Message: "Please add more details (20+ characters)."},
	}},
	{Field: "captchaAnswer", Value: func(v *models.FormValues) string { return v.CaptchaAnswer }, Rules: []FieldRule{
		{Tag: "required", Message: "Please answer the question."},
	}},
}

// SchemaFor returns the rule set of a form
func SchemaFor(kind models.FormKind) []FieldSchema {
	if kind == models.FormIntake {
		return intakeSchema
	}
	return consultationSchema
}

// ValidateForm evaluates every field independently and returns the failures.
// An empty result means the values may be submitted.
func ValidateForm(kind models.FormKind, values *models.FormValues) FieldErrors {
	errs := make(FieldErrors)
	for _, fs := range SchemaFor(kind) {
		value := fs.Value(values)
		for _, rule := range fs.Rules {
			if err := validate.Var(value, rule.Tag); err != nil {
				errs[fs.Field] = rule.Message
				break
			}
		}
	}
	return errs
}
