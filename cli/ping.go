package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"farida_law_site_go/config"
	"farida_law_site_go/models"
	"farida_law_site_go/services"

	"github.com/spf13/cobra"
)

type pingOptions struct {
	form     string
	endpoint string
	timeout  time.Duration
}

func newPingCmd() *cobra.Command {
	opts := &pingOptions{}

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Post a sample lead to a delivery endpoint",
		Long: `Ping sends one clearly marked sample payload to the endpoint configured for
a form, using the same transport as the site, and prints the parsed response.

Example:
  sitectl ping --form contact
  sitectl ping --form client_intake --endpoint https://hooks.example.com/intake`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPing(cmd.Context(), cmd.OutOrStdout(), currentConfig(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.form, "form", string(models.FormConsultation), "form to ping (contact, client_intake)")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "endpoint URL (defaults to the configured one)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (defaults to DELIVERY_TIMEOUT)")
	return cmd
}

func runPing(ctx context.Context, w io.Writer, cfg *config.Config, opts *pingOptions) error {
	kind := models.FormKind(opts.form)
	if !kind.IsValid() {
		return fmt.Errorf("unknown form %q (want contact or client_intake)", opts.form)
	}

	endpoint := opts.endpoint
	if endpoint == "" {
		endpoint = cfg.EndpointFor(string(kind))
	}
	if endpoint == "" {
		return fmt.Errorf("%s: %w", kind, services.ErrEndpointNotConfigured)
	}

	timeout := opts.timeout
	if timeout <= 0 {
		timeout = cfg.DeliveryTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}

	site, err := services.LoadSite(cfg.SiteFile)
	if err != nil {
		return err
	}

	transport := services.NewHTTPTransport(timeout)
	start := time.Now()
	data, err := transport.PostJSON(ctx, endpoint, samplePayload(kind, site.Host(), time.Now()))
	elapsed := time.Since(start).Round(time.Millisecond)

	var te *services.TransportError
	switch {
	case errors.As(err, &te):
		fmt.Fprintf(w, "%s: status %d in %s\n", kind, te.StatusCode, elapsed)
	case err != nil:
		return fmt.Errorf("%s: %w", kind, err)
	default:
		fmt.Fprintf(w, "%s: delivered in %s\n", kind, elapsed)
	}

	if data != nil {
		out, _ := json.MarshalIndent(data, "", "  ")
		fmt.Fprintln(w, string(out))
	}
	return err
}

// samplePayload builds a valid payload that a receiver can recognise as a test
func samplePayload(kind models.FormKind, source string, now time.Time) any {
	submittedAt := now.UTC().Format(time.RFC3339)
	const message = "Connectivity check from sitectl. Please disregard this lead."

	if kind == models.FormIntake {
		return models.IntakePayload{
			Type:            models.FormIntake,
			FullName:        "Sitectl Test",
			Phone:           "(619) 555-0100",
			Email:           "sitectl@example.com",
			CaseType:        models.DefaultInjuryType,
			Message:         message,
			CaptchaAnswer:   "5",
			CaptchaExpected: "5",
			SubmittedAt:     submittedAt,
			Source:          source,
			Page:            kind.Page(),
		}
	}

	return models.ContactPayload{
		Type:        models.FormConsultation,
		FullName:    "Sitectl Test",
		Email:       "sitectl@example.com",
		Phone:       "(619) 555-0100",
		Message:     message,
		SubmittedAt: submittedAt,
		Source:      source,
		Page:        kind.Page(),
	}
}
