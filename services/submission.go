package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"farida_law_site_go/metrics"
	"farida_law_site_go/models"

	"go.uber.org/zap"
)

var (
	// ErrEndpointNotConfigured means no delivery endpoint is set for the form
	ErrEndpointNotConfigured = errors.New("delivery endpoint not configured")
	// ErrSubmissionInFlight means a submit for the same form instance is still sending
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// User-facing messages
const (
	ConsultationErrorMessage = "We couldn’t submit your request right now. Please try again, or call/email us below."
	IntakeErrorMessage       = "Submission failed. Please try again or contact us."
	NotConfiguredMessage     = "Online submissions are not configured right now. Please call or email us directly."
	ChallengeMismatchMessage = "Incorrect answer. Please try again."
)

// Outcome says how one Submit call ended
type Outcome string

const (
	OutcomeInFlight        Outcome = "in_flight"
	OutcomeSuppressed      Outcome = "suppressed"
	OutcomeInvalid         Outcome = "invalid"
	OutcomeChallengeFailed Outcome = "challenge_failed"
	OutcomeSent            Outcome = "sent"
	OutcomeFailed          Outcome = "failed"
)

// SubmissionState is everything a form render needs to know about its lifecycle
type SubmissionState struct {
	Status       models.SubmissionStatus
	Values       models.FormValues
	Errors       FieldErrors
	ErrorMessage string
	Challenge    models.Challenge
	// ShowFallback asks the view to render the office phone and email
	ShowFallback bool
	LastError    error
}

// ControllerConfig wires one controller
type ControllerConfig struct {
	Form      models.FormKind
	Endpoint  string
	Transport Transport
	// Challenges issues replacement questions. Required for the intake form.
	Challenges ChallengeIssuer
	// Challenge is the question currently shown. When nil on an intake form a new one is issued.
	Challenge *models.Challenge
	Office    models.ContactInfo
	Source    string
	Now       func() time.Time
	Logger    *zap.Logger
}

// SubmissionController owns the state of one form instance. State changes
// only through Submit and Reset.
type SubmissionController struct {
	cfg   ControllerConfig
	mu    sync.Mutex
	state SubmissionState
}

// NewSubmissionController creates an idle controller with default values
func NewSubmissionController(cfg ControllerConfig) *SubmissionController {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)

	c := &SubmissionController{cfg: cfg}
	c.state = SubmissionState{
		Status: models.StatusIdle,
		Values: models.DefaultFormValues(cfg.Form),
		Errors: FieldErrors{},
	}
	if cfg.Form == models.FormIntake {
		if cfg.Challenge != nil {
			c.state.Challenge = *cfg.Challenge
		} else {
			c.rotateChallenge()
		}
	}
	return c
}

// Form returns the form this controller serves
func (c *SubmissionController) Form() models.FormKind {
	return c.cfg.Form
}

// Office returns the fallback contact channels
func (c *SubmissionController) Office() models.ContactInfo {
	return c.cfg.Office
}

// State returns a snapshot of the current state
func (c *SubmissionController) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Errors = make(FieldErrors, len(c.state.Errors))
	for k, v := range c.state.Errors {
		s.Errors[k] = v
	}
	return s
}

// Reset returns the form to idle with default values. The current challenge stays.
func (c *SubmissionController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Status == models.StatusSending {
		return
	}
	c.state.Status = models.StatusIdle
	c.state.Values = models.DefaultFormValues(c.cfg.Form)
	c.state.Errors = FieldErrors{}
	c.state.ErrorMessage = ""
	c.state.ShowFallback = false
	c.state.LastError = nil
}

// Submit runs one user-initiated submit attempt and performs at most one delivery
func (c *SubmissionController) Submit(ctx context.Context, values models.FormValues) Outcome {
	outcome := c.submit(ctx, values)
	metrics.FormSubmissions.WithLabelValues(string(c.cfg.Form), string(outcome)).Inc()
	return outcome
}

func (c *SubmissionController) submit(ctx context.Context, values models.FormValues) Outcome {
	c.mu.Lock()

	if c.state.Status == models.StatusSending {
		c.mu.Unlock()
		return OutcomeInFlight
	}

	// Honeypot: leave no trace at all
	if strings.TrimSpace(values.Website) != "" {
		c.mu.Unlock()
		c.cfg.Logger.Info("honeypot filled, submission dropped", zap.String("form", string(c.cfg.Form)))
		return OutcomeSuppressed
	}

	c.state.Values = values
	c.state.Status = models.StatusIdle
	c.state.ErrorMessage = ""
	c.state.ShowFallback = false

	if errs := ValidateForm(c.cfg.Form, &values); len(errs) > 0 {
		c.state.Errors = errs
		if c.cfg.Form == models.FormIntake {
			c.state.Values.CaptchaAnswer = ""
			c.rotateChallenge()
		}
		c.mu.Unlock()
		return OutcomeInvalid
	}

	expected := ""
	if c.cfg.Form == models.FormIntake {
		expected = c.state.Challenge.Answer
		if expected == "" || strings.TrimSpace(values.CaptchaAnswer) != expected {
			c.state.Errors = FieldErrors{"captchaAnswer": ChallengeMismatchMessage}
			c.state.Values.CaptchaAnswer = ""
			c.rotateChallenge()
			c.mu.Unlock()
			return OutcomeChallengeFailed
		}
	}

	c.state.Status = models.StatusSending
	c.state.Errors = FieldErrors{}
	c.state.LastError = nil

	if c.cfg.Endpoint == "" {
		c.fail(ErrEndpointNotConfigured)
		c.mu.Unlock()
		return OutcomeFailed
	}

	payload := c.buildPayload(values, expected)
	c.mu.Unlock()

	// The lock is released while delivering so a concurrent Submit sees
	// the sending status and backs off.
	start := time.Now()
	_, err := c.cfg.Transport.PostJSON(ctx, c.cfg.Endpoint, payload)
	metrics.DeliveryDuration.WithLabelValues(string(c.cfg.Form)).Observe(time.Since(start).Seconds())

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.fail(err)
		return OutcomeFailed
	}

	c.state.Status = models.StatusSent
	c.state.Values = models.DefaultFormValues(c.cfg.Form)
	if c.cfg.Form == models.FormIntake {
		c.rotateChallenge()
	}
	c.cfg.Logger.Info("lead delivered", zap.String("form", string(c.cfg.Form)))
	return OutcomeSent
}

// fail moves to the error state. Callers hold mu.
func (c *SubmissionController) fail(err error) {
	c.state.Status = models.StatusError
	c.state.ErrorMessage = c.errorMessage(err)
	c.state.ShowFallback = true
	c.state.LastError = err
	c.state.Values.Website = ""
	c.state.Values.CaptchaAnswer = ""
	if c.cfg.Form == models.FormIntake {
		c.rotateChallenge()
	}

	fields := []zap.Field{zap.String("form", string(c.cfg.Form)), zap.Error(err)}
	var te *TransportError
	if errors.As(err, &te) {
		fields = append(fields, zap.Int("status", te.StatusCode), zap.Any("body", te.Body))
	}
	c.cfg.Logger.Error("lead delivery failed", fields...)
}

func (c *SubmissionController) errorMessage(err error) string {
	if errors.Is(err, ErrEndpointNotConfigured) {
		return NotConfiguredMessage
	}

	msg := ConsultationErrorMessage
	if c.cfg.Form == models.FormIntake {
		msg = IntakeErrorMessage
	}

	var te *TransportError
	if errors.As(err, &te) {
		msg = fmt.Sprintf("%s (status %d)", msg, te.StatusCode)
	}
	return msg
}

// rotateChallenge replaces the current challenge. Callers hold mu.
func (c *SubmissionController) rotateChallenge() {
	if c.cfg.Challenges == nil {
		c.state.Challenge = GenerateChallenge()
		return
	}
	c.state.Challenge = c.cfg.Challenges.Issue()
}

func (c *SubmissionController) buildPayload(v models.FormValues, expected string) any {
	submittedAt := c.cfg.Now().UTC().Format(time.RFC3339)

	if c.cfg.Form == models.FormIntake {
		return models.IntakePayload{
			Type:            models.FormIntake,
			FullName:        v.FullName,
			Phone:           v.Phone,
			Email:           v.Email,
			CaseType:        v.CaseType,
			IncidentDate:    strings.TrimSpace(v.IncidentDate),
			Message:         v.Message,
			CaptchaAnswer:   strings.TrimSpace(v.CaptchaAnswer),
			CaptchaExpected: expected,
			SubmittedAt:     submittedAt,
			Source:          c.cfg.Source,
			Page:            models.FormIntake.Page(),
		}
	}

	return models.ContactPayload{
		Type:        models.FormConsultation,
		FullName:    v.FullName,
		Email:       v.Email,
		Phone:       v.Phone,
		CaseType:    strings.TrimSpace(v.CaseType),
		Message:     v.Message,
		SubmittedAt: submittedAt,
		Source:      c.cfg.Source,
		Page:        models.FormConsultation.Page(),
	}
}
