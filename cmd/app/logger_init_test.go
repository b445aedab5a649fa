package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RatingTable_Go/internal/config"
	"github.com/osse101/RatingTable_Go/internal/logger"
)

func TestLoggerConfigFor(t *testing.T) {
	t.Run("production keeps json and applies explicit values", func(t *testing.T) {
		cfg := &config.Config{
			LogLevel:    "warn",
			LogFormat:   "json",
			Environment: config.EnvironmentProduction,
			ServiceName: "rating-table",
			Version:     "2.1.0",
		}

		got := loggerConfigFor(cfg)

		assert.Equal(t, "warn", got.Level)
		assert.Equal(t, logger.LogFormatJSON, got.Format)
		assert.Equal(t, logger.EnvironmentProduction, got.Environment)
		assert.Equal(t, "2.1.0", got.Version)
		assert.False(t, got.AddSource)
	})

	t.Run("development adds source", func(t *testing.T) {
		cfg := &config.Config{
			LogLevel:    "info",
			LogFormat:   "text",
			Environment: config.EnvironmentDevelopment,
			ServiceName: "rating-table",
			Version:     "dev",
		}

		got := loggerConfigFor(cfg)

		assert.Equal(t, "info", got.Level)
		assert.Equal(t, logger.EnvironmentDev, got.Environment)
		assert.True(t, got.AddSource)
	})

	t.Run("empty version falls back to environment default", func(t *testing.T) {
		cfg := &config.Config{
			LogLevel:    "info",
			LogFormat:   "json",
			Environment: config.EnvironmentProduction,
			ServiceName: "rating-table",
		}

		assert.Equal(t, logger.ProductionVersion, loggerConfigFor(cfg).Version)
	})
}
