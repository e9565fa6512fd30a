package services

import (
	"fmt"
	"strings"

	"farida_law_site_go/models"

	"github.com/spf13/viper"
)

// LoadSite returns the built-in site content with the YAML (or JSON/TOML) file
// at path merged over it. An empty path returns the defaults.
func LoadSite(path string) (*models.Site, error) {
	site := models.DefaultSite()
	if strings.TrimSpace(path) == "" {
		return site, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read site file %s: %w", path, err)
	}
	if err := v.Unmarshal(site); err != nil {
		return nil, fmt.Errorf("failed to decode site file %s: %w", path, err)
	}

	site.URL = strings.TrimRight(site.URL, "/")
	if site.Contact.PhoneDisplay == "" || site.Contact.Email == "" {
		return nil, fmt.Errorf("site file %s: contact phone_display and email are required", path)
	}
	return site, nil
}
