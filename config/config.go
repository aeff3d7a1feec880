package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StageDev  = "dev"
	StageProd = "prod"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Stage           string        `env:"STAGE" envDefault:"dev"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Resend (transactional email API)
	ResendAPIKey          string        `env:"RESEND_API_KEY"`
	ResendAPIKeySecretARN string        `env:"RESEND_API_KEY_SECRET_ARN"`
	ResendBaseURL         string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com/"`
	EmailTimeout          time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`

	// Contact form owner details, rendered into both emails
	ContactEmailTo   string `env:"CONTACT_EMAIL_TO" envDefault:"ahmednagdy165@gmail.com"`
	ContactFromEmail string `env:"CONTACT_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	OwnerName        string `env:"CONTACT_OWNER_NAME" envDefault:"Ahmed Mohamed"`
	OwnerTitle       string `env:"CONTACT_OWNER_TITLE" envDefault:"Full-Stack Developer specializing in React, Next.js, and Magento 2"`
	OwnerLocation    string `env:"CONTACT_OWNER_LOCATION" envDefault:"Cairo, Egypt"`
	GitHubURL        string `env:"CONTACT_GITHUB_URL" envDefault:"https://github.com/a-nagdy"`
	Timezone         string `env:"CONTACT_TIMEZONE" envDefault:"UTC"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
}

func LoadConfig() (*Config, error) {
	// Only effective locally; missing .env is fine in deployed stages
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Stage = strings.ToLower(strings.TrimSpace(cfg.Stage))
	if cfg.Stage != StageProd {
		cfg.Stage = StageDev
	}

	// Ensure a trailing slash so relative API paths resolve under the base URL
	if !strings.HasSuffix(cfg.ResendBaseURL, "/") {
		cfg.ResendBaseURL += "/"
	}

	for i, origin := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid CONTACT_TIMEZONE %q: %w", cfg.Timezone, err)
	}

	if cfg.ResendAPIKey == "" && cfg.ResendAPIKeySecretARN == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Contact emails will fail and only be logged.")
	}

	return cfg, nil
}

// Location returns the zone used for timestamps shown in emails.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsProduction() bool {
	return c.Stage == StageProd
}
