package handlers

import (
	"net/http"

	"farida_law_site_go/logger"
	"farida_law_site_go/models"
	"farida_law_site_go/services"
	"farida_law_site_go/templates"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Form post fields that are not part of models.FormValues
const (
	fieldFormID      = "form_id"
	fieldChallengeID = "challenge_id"
	fieldApplyDomain = "apply_domain"
)

// ConsultationHandler renders an empty consultation request form
func ConsultationHandler(c echo.Context) error {
	return showForm(c, models.FormConsultation)
}

// ConsultationPostHandler submits the consultation request form
func ConsultationPostHandler(c echo.Context) error {
	return submitForm(c, models.FormConsultation)
}

// IntakeHandler renders an empty client intake form with a fresh challenge
func IntakeHandler(c echo.Context) error {
	return showForm(c, models.FormIntake)
}

// IntakePostHandler submits the client intake form
func IntakePostHandler(c echo.Context) error {
	return submitForm(c, models.FormIntake)
}

func showForm(c echo.Context, kind models.FormKind) error {
	state := services.SubmissionState{
		Status: models.StatusIdle,
		Values: models.DefaultFormValues(kind),
	}
	if kind == models.FormIntake {
		state.Challenge = services.Challenges.Issue()
	}
	return renderForm(c, http.StatusOK, kind, uuid.New().String(), state)
}

func submitForm(c echo.Context, kind models.FormKind) error {
	var values models.FormValues
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	if kind == models.FormIntake {
		values.Phone = services.FormatPhoneNumber(values.Phone)
	}

	instanceID := c.FormValue(fieldFormID)
	if instanceID == "" {
		instanceID = uuid.New().String()
	}

	// A domain chip only completes the email field
	if domain := c.FormValue(fieldApplyDomain); domain != "" {
		if services.IsEmailDomainOption(domain) {
			values.Email = services.ApplyEmailDomain(values.Email, domain)
		}
		values.Website = ""
		return renderForm(c, http.StatusOK, kind, instanceID, services.SubmissionState{
			Status:    models.StatusIdle,
			Values:    values,
			Challenge: currentChallenge(c, kind),
		})
	}

	if err := services.Inflight.Begin(instanceID); err != nil {
		values.Website = ""
		return renderForm(c, http.StatusConflict, kind, instanceID, services.SubmissionState{
			Status:    models.StatusSending,
			Values:    values,
			Challenge: currentChallenge(c, kind),
		})
	}
	defer services.Inflight.End(instanceID)

	var shown *models.Challenge
	if kind == models.FormIntake {
		// Single use: an answer is checked against the question at most once.
		// An unknown or spent challenge has no answer, so it never matches.
		ch, _ := services.Challenges.Take(c.FormValue(fieldChallengeID))
		shown = &ch
	}

	cfg := getConfig(c)
	site := getSite(c)
	ctrl := services.NewSubmissionController(services.ControllerConfig{
		Form:       kind,
		Endpoint:   cfg.EndpointFor(string(kind)),
		Transport:  services.NewHTTPTransport(cfg.DeliveryTimeout),
		Challenges: services.Challenges,
		Challenge:  shown,
		Office:     site.Contact,
		Source:     site.Host(),
		Logger:     logger.With(zap.String("form_id", instanceID)),
	})

	outcome := ctrl.Submit(c.Request().Context(), values)
	state := ctrl.State()

	if outcome == services.OutcomeSuppressed {
		// Nothing visible happens for a filled honeypot
		values.Website = ""
		state.Values = values
		if kind == models.FormIntake {
			state.Challenge = services.Challenges.Issue()
		}
	}

	return renderForm(c, http.StatusOK, kind, instanceID, state)
}

// currentChallenge returns the challenge the posted form was showing, or a
// new one when it expired
func currentChallenge(c echo.Context, kind models.FormKind) models.Challenge {
	if kind != models.FormIntake {
		return models.Challenge{}
	}
	if ch, ok := services.Challenges.Peek(c.FormValue(fieldChallengeID)); ok {
		return ch
	}
	return services.Challenges.Issue()
}

func renderForm(c echo.Context, status int, kind models.FormKind, instanceID string, state services.SubmissionState) error {
	page := kind.Page()
	site := getSite(c)

	data := newPageData(c, page)
	data.Form = &templates.FormView{
		Kind:         kind,
		InstanceID:   instanceID,
		Action:       pagePath[page],
		Status:       state.Status,
		Values:       state.Values,
		Errors:       state.Errors,
		ErrorMessage: state.ErrorMessage,
		ShowFallback: state.ShowFallback,
		Challenge:    state.Challenge,
		InjuryTypes:  models.InjuryTypes,
		EmailDomains: services.EmailDomains,
		Office:       site.Contact,
	}

	component, err := templates.Page(page, data)
	if err != nil {
		return err
	}
	return render(c, status, component)
}
