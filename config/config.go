package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment string
	Port        string

	// Store selects the attendee store backend: "postgres" or "memory".
	Store string
	DBUrl string

	// DefaultZone is the fallback zone for check-ins that carry no
	// location and for bulk check-ins of attendees with no recorded zone.
	DefaultZone string

	CORSAllowedOrigins []string

	// Import report mailer.
	EmailProvider         string
	EmailFromAddress      string
	EmailFromName         string
	ImportReportRecipient string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables.
// It attempts to load from .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables; elsewhere a
	// missing .env is fine too.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:           env,
		Port:                  os.Getenv("PORT"),
		Store:                 os.Getenv("STORE"),
		DBUrl:                 os.Getenv("DATABASE_URL"),
		DefaultZone:           os.Getenv("DEFAULT_ZONE"),
		EmailProvider:         os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:      os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:         os.Getenv("EMAIL_FROM_NAME"),
		ImportReportRecipient: os.Getenv("IMPORT_REPORT_RECIPIENT"),
		AWSRegion:             os.Getenv("AWS_REGION"),
		AWSAccessKeyID:        os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:    os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SESInsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSAllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	// Defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DefaultZone == "" {
		cfg.DefaultZone = "Main Hall"
	}
	if cfg.Store == "" {
		if cfg.DBUrl != "" {
			cfg.Store = "postgres"
		} else {
			cfg.Store = "memory"
		}
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}

	return cfg, nil
}
