package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/scoutclear/scout/internal/logging"
)

// Mail providers understood by MAIL_PROVIDER
const (
	ProviderResend  = "resend"
	ProviderMailgun = "mailgun"
	ProviderLog     = "log"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string `env:"ENV" envDefault:"development"`
	Port           string `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Logging Configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Site Configuration
	BrandFile string `env:"BRAND_FILE"`

	Mail Mail
}

// Mail holds the out-of-band values the contact endpoint needs to deliver an inquiry.
// They are checked per request, never at startup.
type Mail struct {
	Provider      string `env:"MAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"`
	ToAddress     string `env:"CONTACT_TO_EMAIL"`
	FromAddress   string `env:"CONTACT_FROM_EMAIL"`
}

// RequiredVars lists the environment variables the selected provider needs.
func (m Mail) RequiredVars() []string {
	switch m.Provider {
	case ProviderMailgun:
		return []string{"MAILGUN_API_KEY", "MAILGUN_DOMAIN", "CONTACT_TO_EMAIL", "CONTACT_FROM_EMAIL"}
	case ProviderLog:
		return []string{"CONTACT_TO_EMAIL", "CONTACT_FROM_EMAIL"}
	default:
		return []string{"RESEND_API_KEY", "CONTACT_TO_EMAIL", "CONTACT_FROM_EMAIL"}
	}
}

// Configured reports whether every value in RequiredVars is present.
func (m Mail) Configured() bool {
	if m.ToAddress == "" || m.FromAddress == "" {
		return false
	}
	switch m.Provider {
	case ProviderMailgun:
		return m.MailgunAPIKey != "" && m.MailgunDomain != ""
	case ProviderLog:
		return true
	default:
		return m.ResendAPIKey != ""
	}
}

// MissingMessage is the operator-facing error returned when Configured is false.
func (m Mail) MissingMessage() string {
	return fmt.Sprintf("Server is not configured (missing %s)", strings.Join(m.RequiredVars(), " / "))
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Origins splits ALLOWED_ORIGINS into trimmed, non-empty entries
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the current process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, logging.WrapError(err, "failed to parse config")
	}

	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	switch cfg.Mail.Provider {
	case "":
		cfg.Mail.Provider = ProviderResend
	case ProviderResend, ProviderMailgun, ProviderLog:
	default:
		return nil, logging.WrapError(logging.ErrInvalidConfig, fmt.Sprintf("unsupported MAIL_PROVIDER %q", cfg.Mail.Provider))
	}

	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	return cfg, nil
}
