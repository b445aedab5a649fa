package config

import "strings"

// Warnings returns non-critical issues with an otherwise valid configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == EnvironmentProduction && strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, "LOG_LEVEL is debug in production - expect noisy logs")
	}

	if c.Environment == EnvironmentProduction && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT should be json in production for log aggregation")
	}

	if c.Environment == EnvironmentProduction && c.Version == DefaultVersion {
		warnings = append(warnings, "VERSION is unset in production")
	}

	return warnings
}
