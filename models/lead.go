package models

import "time"

// FormKind discriminates the two lead forms. Its value is the payload "type".
type FormKind string

const (
	FormConsultation FormKind = "contact"
	FormIntake       FormKind = "client_intake"
)

// Page returns the page slug the form is served from, used as payload provenance
func (k FormKind) Page() string {
	switch k {
	case FormConsultation:
		return "consultation-request"
	case FormIntake:
		return "client-intake"
	default:
		return ""
	}
}

// IsValid reports whether k names a known form
func (k FormKind) IsValid() bool {
	return k == FormConsultation || k == FormIntake
}

// SubmissionStatus is the lifecycle state of one form instance
type SubmissionStatus string

const (
	StatusIdle    SubmissionStatus = "idle"
	StatusSending SubmissionStatus = "sending"
	StatusSent    SubmissionStatus = "sent"
	StatusError   SubmissionStatus = "error"
)

// InjuryTypes is the fixed list of personal-injury case categories
var InjuryTypes = []string{
	"Car Accident",
	"Motorcycle Accident",
	"Truck / Commercial Vehicle",
	"Pedestrian / Bicycle Accident",
	"Slip & Fall / Premises Liability",
	"Dog Bite",
	"Wrongful Death",
	"Other Injury",
}

// DefaultInjuryType is preselected on the intake form
const DefaultInjuryType = "Car Accident"

// IsValidInjuryType checks membership in InjuryTypes
func IsValidInjuryType(v string) bool {
	for _, t := range InjuryTypes {
		if t == v {
			return true
		}
	}
	return false
}

// FormValues holds the named fields of either lead form.
// Website is the honeypot and is never forwarded.
type FormValues struct {
	FullName      string `form:"fullName" json:"fullName"`
	Email         string `form:"email" json:"email"`
	Phone         string `form:"phone" json:"phone"`
	Message       string `form:"message" json:"message"`
	CaseType      string `form:"caseType" json:"caseType"`
	IncidentDate  string `form:"incidentDate" json:"incidentDate"`
	CaptchaAnswer string `form:"captchaAnswer" json:"captchaAnswer"`
	Website       string `form:"website" json:"-"`
}

// DefaultFormValues returns the blank state of a form
func DefaultFormValues(kind FormKind) FormValues {
	v := FormValues{}
	if kind == FormIntake {
		v.CaseType = DefaultInjuryType
	}
	return v
}

// Challenge is a one-time arithmetic question shown on the intake form
type Challenge struct {
	ID       string    `json:"id"`
	A        int       `json:"a"`
	B        int       `json:"b"`
	Question string    `json:"question"`
	Answer   string    `json:"-"`
	IssuedAt time.Time `json:"issued_at"`
}

// ContactPayload is the JSON body delivered for a consultation request
type ContactPayload struct {
	Type        FormKind `json:"type"`
	FullName    string   `json:"fullName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	CaseType    string   `json:"caseType,omitempty"`
	Message     string   `json:"message"`
	SubmittedAt string   `json:"submittedAt"`
	Source      string   `json:"source"`
	Page        string   `json:"page"`
}

// IntakePayload is the JSON body delivered for a client intake.
// CaptchaAnswer and CaptchaExpected let the receiver re-check the challenge.
type IntakePayload struct {
	Type            FormKind `json:"type"`
	FullName        string   `json:"fullName"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	CaseType        string   `json:"caseType"`
	IncidentDate    string   `json:"incidentDate,omitempty"`
	Message         string   `json:"message"`
	CaptchaAnswer   string   `json:"captchaAnswer"`
	CaptchaExpected string   `json:"captchaExpected"`
	SubmittedAt     string   `json:"submittedAt"`
	Source          string   `json:"source"`
	Page            string   `json:"page"`
}

// LeadPayload is the union of both payload shapes as accepted by the lead relay
type LeadPayload struct {
	Type         string `json:"type" validate:"required,oneof=contact client_intake"`
	FullName     string `json:"fullName" validate:"required,min=2,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=7,max=40"`
	CaseType     string `json:"caseType" validate:"omitempty,max=120"`
	IncidentDate string `json:"incidentDate" validate:"omitempty,datetime=2006-01-02"`
	Message      string `json:"message" validate:"required,min=10,max=10000"`
	SubmittedAt  string `json:"submittedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Source       string `json:"source" validate:"max=200"`
	Page         string `json:"page" validate:"max=200"`
}
