// Package config reads the site's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort             = 8080
	DefaultProfileImagePath = "profilepic/portfolio1.jpg"
	DefaultFallbackImageURL = "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800&q=80"
	DefaultVisitsDB         = "visits.db"
	DefaultSessionTTL       = 30 * time.Minute
	DefaultVisitRetention   = 365 * 24 * time.Hour
)

// Config holds the server settings.
type Config struct {
	Port             int
	ProfileImagePath string        // local profile photo, relative to the working directory
	FallbackImageURL string        // used when ProfileImagePath does not exist
	VisitsDB         string        // SQLite file for visit analytics; empty disables tracking
	SessionTTL       time.Duration // idle time after which a session's messages are dropped
	VisitRetention   time.Duration
}

// Load builds a Config from environment variables, falling back to defaults
// for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             DefaultPort,
		ProfileImagePath: getEnvString("PROFILE_IMAGE_PATH", DefaultProfileImagePath),
		FallbackImageURL: getEnvString("PROFILE_FALLBACK_URL", DefaultFallbackImageURL),
		VisitsDB:         DefaultVisitsDB,
		SessionTTL:       DefaultSessionTTL,
		VisitRetention:   DefaultVisitRetention,
	}

	if v, ok := os.LookupEnv("VISITS_DB"); ok {
		cfg.VisitsDB = v
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getEnvDuration("SESSION_TTL", DefaultSessionTTL); err != nil {
		return nil, err
	}
	if cfg.VisitRetention, err = getEnvDuration("VISIT_RETENTION", DefaultVisitRetention); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.FallbackImageURL == "" {
		return fmt.Errorf("config error: profile fallback URL must be set")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("config error: session TTL must be non-negative")
	}
	if c.VisitRetention <= 0 {
		return fmt.Errorf("config error: visit retention must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s=%q is not an integer: %w", key, v, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config error: %s=%q is not a duration: %w", key, v, err)
	}
	return d, nil
}
