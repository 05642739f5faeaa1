package config

import (
	"fmt"
	"os"
)

// Config holds everything the process reads from the environment. Loaded once
// at startup and passed down explicitly.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	Port        string
	DemoData    bool
}

// Load reads the environment. DATABASE_URL is required; the rest have
// development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("PORT"),
		DemoData:    os.Getenv("DEMO_DATA") == "true",
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	return cfg, nil
}
