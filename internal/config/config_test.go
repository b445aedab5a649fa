package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "rating-table", cfg.ServiceName)
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("PORT", "3000")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("SERVICE_NAME", "ratings")
		t.Setenv("VERSION", "1.2.3")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "ratings", cfg.ServiceName)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("normalizes LOG_LEVEL and LOG_FORMAT case", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("LOG_FORMAT", "JSON")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("returns error for out of range PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "Port")
	})

	t.Run("returns error for unknown LOG_FORMAT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "LogFormat")
	})

	t.Run("returns error for empty SERVICE_NAME", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("SERVICE_NAME", "")

		_, err := Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ServiceName")
	})
}

func TestWarnings(t *testing.T) {
	t.Run("no warnings in dev", func(t *testing.T) {
		cfg := &Config{Port: 8080, LogLevel: "debug", LogFormat: "text", Environment: "dev", ServiceName: "x", Version: "dev"}
		assert.Empty(t, cfg.Warnings())
	})

	t.Run("production misconfiguration", func(t *testing.T) {
		cfg := &Config{Port: 8080, LogLevel: "DEBUG", LogFormat: "text", Environment: "prod", ServiceName: "x", Version: "dev"}
		warnings := cfg.Warnings()
		assert.Len(t, warnings, 3)
	})

	t.Run("clean production config", func(t *testing.T) {
		cfg := &Config{Port: 8080, LogLevel: "info", LogFormat: "json", Environment: "prod", ServiceName: "x", Version: "1.0.0"}
		assert.Empty(t, cfg.Warnings())
	})
}
