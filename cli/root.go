// Package cli implements sitectl, the operator tool for checking the lead
// delivery setup of a deployment.
package cli

import (
	"farida_law_site_go/config"

	"github.com/spf13/cobra"
)

// loadConfig is replaced in tests
var loadConfig = config.Load

var siteFile string

// NewRootCmd builds the sitectl command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sitectl",
		Short: "Operator checks for the Farida Law SD site",
		Long: `sitectl inspects the configuration the site server would start with and
exercises the lead delivery endpoints without going through a browser.

Configuration is read from the environment and an optional .env file, the
same way the server reads it.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&siteFile, "site", "", "site content file (overrides SITE_FILE)")

	root.AddCommand(newCheckCmd())
	root.AddCommand(newPingCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func currentConfig() *config.Config {
	cfg := loadConfig()
	if siteFile != "" {
		cfg.SiteFile = siteFile
	}
	return cfg
}
