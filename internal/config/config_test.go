package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "PROFILE_IMAGE_PATH", "PROFILE_FALLBACK_URL", "SESSION_TTL", "VISIT_RETENTION"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultProfileImagePath, cfg.ProfileImagePath)
	assert.Equal(t, DefaultFallbackImageURL, cfg.FallbackImageURL)
	assert.Equal(t, DefaultSessionTTL, cfg.SessionTTL)
	assert.Equal(t, DefaultVisitRetention, cfg.VisitRetention)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("PROFILE_IMAGE_PATH", "img/me.png")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("VISITS_DB", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "img/me.png", cfg.ProfileImagePath)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "", cfg.VisitsDB, "explicitly empty VISITS_DB disables tracking")
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)

	t.Setenv("PORT", "eighty")
	_, err := Load()
	assert.ErrorContains(t, err, "PORT")

	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "SESSION_TTL")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:             8080,
			FallbackImageURL: DefaultFallbackImageURL,
			SessionTTL:       time.Minute,
			VisitRetention:   time.Hour,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero ttl allowed", mutate: func(c *Config) { c.SessionTTL = 0 }},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, errMsg: "port 0 out of range"},
		{name: "port too high", mutate: func(c *Config) { c.Port = 70000 }, errMsg: "out of range"},
		{name: "no fallback", mutate: func(c *Config) { c.FallbackImageURL = "" }, errMsg: "fallback URL"},
		{name: "negative ttl", mutate: func(c *Config) { c.SessionTTL = -time.Second }, errMsg: "session TTL"},
		{name: "no retention", mutate: func(c *Config) { c.VisitRetention = 0 }, errMsg: "retention"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.errMsg)
			}
		})
	}
}
