package services

import (
	"bytes"
	"fmt"
	"html"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"farida_law_site_go/config"
	"farida_law_site_go/logger"
	"farida_law_site_go/models"
	"farida_law_site_go/templates"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// Email represents an email message
type Email struct {
	To       []string
	ReplyTo  string
	Subject  string
	HTMLBody string
	TextBody string
}

// LeadEmailData is the template data of a lead notification. Every string is
// stripped of markup before it reaches a template.
type LeadEmailData struct {
	Heading      string
	FullName     string
	Email        string
	Phone        string
	CaseType     string
	IncidentDate string
	Message      string
	SubmittedAt  string
	Source       string
	Page         string
}

var strictPolicy = bluemonday.StrictPolicy()

// plainText removes any markup and decodes the entities bluemonday leaves behind
func plainText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(strings.TrimSpace(s)))
}

// loadTemplate renders templates/emails/<name>.html and .txt
func loadTemplate(name string, data any) (htmlBody string, textBody string, err error) {
	htmlTmpl, err := htmltemplate.ParseFS(templates.FS, "emails/"+name+".html")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.html: %w", name, err)
	}
	var hb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.html: %w", name, err)
	}

	textTmpl, err := texttemplate.ParseFS(templates.FS, "emails/"+name+".txt")
	if err != nil {
		return "", "", fmt.Errorf("failed to parse template %s.txt: %w", name, err)
	}
	var tb bytes.Buffer
	if err := textTmpl.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("failed to execute template %s.txt: %w", name, err)
	}

	return hb.String(), tb.String(), nil
}

// BuildLeadEmail creates the notification sent to the office for one lead
func BuildLeadEmail(toEmail string, lead *models.LeadPayload) (*Email, error) {
	heading := "New consultation request"
	if lead.Type == string(models.FormIntake) {
		heading = "New client intake"
	}

	data := LeadEmailData{
		Heading:      heading,
		FullName:     plainText(lead.FullName),
		Email:        plainText(lead.Email),
		Phone:        plainText(lead.Phone),
		CaseType:     plainText(lead.CaseType),
		IncidentDate: plainText(lead.IncidentDate),
		Message:      plainText(lead.Message),
		SubmittedAt:  plainText(lead.SubmittedAt),
		Source:       plainText(lead.Source),
		Page:         plainText(lead.Page),
	}

	htmlBody, textBody, err := loadTemplate("lead", data)
	if err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("%s: %s", heading, data.FullName)
	if data.CaseType != "" {
		subject += " (" + data.CaseType + ")"
	}

	return &Email{
		To:       []string{toEmail},
		ReplyTo:  data.Email,
		Subject:  subject,
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		ReplyTo: email.ReplyTo,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	logger.Info("email sent via Resend", zap.String("id", sent.Id), zap.Strings("to", email.To))
	return nil
}

// logEmailToConsole logs email details in test mode
func logEmailToConsole(email *Email) {
	logger.Info("email logged (test mode, not sent)",
		zap.Strings("to", email.To),
		zap.String("reply_to", email.ReplyTo),
		zap.String("subject", email.Subject),
		zap.String("text", email.TextBody),
		zap.String("html", truncate(email.HTMLBody, 500)),
	)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// RelayLead turns a delivered payload into an office notification
func RelayLead(cfg *config.Config, lead *models.LeadPayload) error {
	if cfg.LeadNotifyEmail == "" {
		return fmt.Errorf("LEAD_NOTIFY_EMAIL not configured")
	}

	email, err := BuildLeadEmail(cfg.LeadNotifyEmail, lead)
	if err != nil {
		return err
	}
	return SendEmail(cfg, email)
}
