package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Email Configuration
	ResendAPIKey      string `env:"RESEND_API_KEY"`
	NotificationEmail string `env:"CONTACT_NOTIFICATION_EMAIL" envDefault:"hello@halcyonworks.com"`
	FromEmail         string `env:"CONTACT_FROM_EMAIL" envDefault:"Halcyon Works <noreply@halcyonworks.com>"`

	// CORS Configuration
	ExtraAllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// Global flood guard (all routes, all clients)
	GlobalRPS   int `env:"GLOBAL_RPS" envDefault:"10"`
	GlobalBurst int `env:"GLOBAL_BURST" envDefault:"20"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Try the environment-specific file first, then the generic one.
	// godotenv never overwrites variables that are already set.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
// Development mode relaxes CORS and lets submissions succeed without a
// configured email provider.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}
