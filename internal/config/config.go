package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"required,oneof=debug info warn warning error"`
	LogFormat   string `validate:"required,oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags on Config
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsDevelopment reports whether the app runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
