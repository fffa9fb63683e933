// Package config holds the process-wide configuration loaded once at
// startup and injected into the services that need it.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for the application.
type Config struct {
	// OpenAIAPIKey authenticates calls to the completions API.
	OpenAIAPIKey string

	// SMTP account used to deliver the generated plans.
	EmailUsername string
	EmailPassword string
	SMTPHost      string
	SMTPPort      int

	// LogoPath points at the static logo embedded in every email.
	LogoPath string

	// Port the HTTP server listens on.
	Port int
}

// NewFromEnv creates a new Config object from environment variables.
// The API key and mail credentials are required; everything else has
// a sensible default.
func NewFromEnv() (*Config, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	emailUser := os.Getenv("EMAIL_USERNAME")
	if emailUser == "" {
		return nil, fmt.Errorf("EMAIL_USERNAME environment variable not set")
	}

	emailPass := os.Getenv("EMAIL_PASSWORD")
	if emailPass == "" {
		return nil, fmt.Errorf("EMAIL_PASSWORD environment variable not set")
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || smtpPort == 0 {
		smtpPort = 587
	}

	logoPath := os.Getenv("LOGO_PATH")
	if logoPath == "" {
		logoPath = "assets/images/EatRealLogo.png"
	}

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port == 0 {
		port = 8080
	}

	return &Config{
		OpenAIAPIKey:  apiKey,
		EmailUsername: emailUser,
		EmailPassword: emailPass,
		SMTPHost:      smtpHost,
		SMTPPort:      smtpPort,
		LogoPath:      logoPath,
		Port:          port,
	}, nil
}
