package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultDeliveryTimeout bounds one outbound lead delivery
	DefaultDeliveryTimeout = 15 * time.Second
	// DefaultChallengeTTL is how long an issued anti-spam question stays answerable
	DefaultChallengeTTL = 30 * time.Minute
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	StaticDir   string
	SiteFile    string
	// Lead delivery endpoints (empty means not configured)
	ContactEndpoint string
	IntakeEndpoint  string
	DeliveryTimeout time.Duration
	ChallengeTTL    time.Duration
	// Logging
	LogLevel string
	LogDir   string
	// Lead relay (Resend)
	LeadRelayEnabled bool
	LeadNotifyEmail  string
	ResendAPIKey     string
	EmailFrom        string
	EmailFromName    string
	EmailTestMode    bool // When true, emails are logged to console instead of sent
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppURL:           strings.TrimRight(getEnv("APP_URL", "https://faridalawsd.com"), "/"),
		StaticDir:        getEnv("STATIC_DIR", "static"),
		SiteFile:         getEnv("SITE_FILE", ""),
		ContactEndpoint:  getEnvFirst("", "CONTACT_ENDPOINT", "NEXT_PUBLIC_CONTACT_ENDPOINT"),
		IntakeEndpoint:   getEnvFirst("", "INTAKE_ENDPOINT", "NEXT_PUBLIC_INTAKE_ENDPOINT"),
		DeliveryTimeout:  getEnvDuration("DELIVERY_TIMEOUT", DefaultDeliveryTimeout),
		ChallengeTTL:     getEnvDuration("CHALLENGE_TTL", DefaultChallengeTTL),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogDir:           getEnv("LOG_DIR", "logs"),
		LeadRelayEnabled: getEnvBool("LEAD_RELAY_ENABLED", false),
		LeadNotifyEmail:  getEnv("LEAD_NOTIFY_EMAIL", ""),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		EmailFrom:        getEnv("EMAIL_FROM", "noreply@faridalawsd.com"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "Farida Law SD Website"),
		EmailTestMode:    getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// EndpointFor returns the delivery endpoint configured for a form type ("contact" or "client_intake")
func (c *Config) EndpointFor(formType string) string {
	switch formType {
	case "contact":
		return c.ContactEndpoint
	case "client_intake":
		return c.IntakeEndpoint
	default:
		return ""
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvFirst returns the first non-blank value among keys.
// Endpoints are never logged since they may embed credentials.
func getEnvFirst(defaultValue string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	log.Printf("[WARNING] None of %s is set; the matching form will report a configuration error", strings.Join(keys, ", "))
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
