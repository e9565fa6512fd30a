package cli

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"farida_law_site_go/config"
	"farida_law_site_go/models"
	"farida_law_site_go/services"

	"github.com/spf13/cobra"
)

// errCheckFailed is returned when at least one check reports a problem
var errCheckFailed = errors.New("configuration check failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report configuration health",
		Long: `Check loads the configuration and site content and reports whether each
lead form has a delivery endpoint and whether the lead relay can send email.
Endpoint URLs are shown by host only.

Exits non-zero when a form has no endpoint or the site file is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), currentConfig())
		},
	}
}

func runCheck(w io.Writer, cfg *config.Config) error {
	ok := true
	report := func(pass bool, format string, a ...any) {
		mark := "ok  "
		if !pass {
			mark = "FAIL"
			ok = false
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, fmt.Sprintf(format, a...))
	}

	site, err := services.LoadSite(cfg.SiteFile)
	if err != nil {
		report(false, "site content: %v", err)
	} else {
		source := "built-in"
		if cfg.SiteFile != "" {
			source = cfg.SiteFile
		}
		report(true, "site content: %s (%s, %s)", site.Name, site.URL, source)
	}

	for _, kind := range []models.FormKind{models.FormConsultation, models.FormIntake} {
		endpoint := cfg.EndpointFor(string(kind))
		if endpoint == "" {
			report(false, "%s endpoint: not configured", kind)
			continue
		}
		host, err := endpointHost(endpoint)
		if err != nil {
			report(false, "%s endpoint: %v", kind, err)
			continue
		}
		report(true, "%s endpoint: %s", kind, host)
	}

	fmt.Fprintf(w, "       delivery timeout: %s\n", cfg.DeliveryTimeout)

	if cfg.LeadRelayEnabled {
		report(cfg.LeadNotifyEmail != "", "lead relay: notify address %q", cfg.LeadNotifyEmail)
		switch {
		case cfg.EmailTestMode:
			fmt.Fprintln(w, "       email test mode: relayed leads are logged, not sent")
		case cfg.ResendAPIKey == "":
			report(false, "lead relay: RESEND_API_KEY not configured")
		default:
			report(true, "lead relay: sending from %s", cfg.EmailFrom)
		}
	} else {
		fmt.Fprintln(w, "       lead relay: disabled")
	}

	if !ok {
		return errCheckFailed
	}
	return nil
}

// endpointHost returns the host of an absolute http(s) URL
func endpointHost(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("not an absolute http(s) URL")
	}
	return u.Scheme + "://" + u.Host, nil
}
