package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "prod", "test"
	AddSource   bool   // Include source file/line in logs
}

// ConfigForEnvironment returns the base config for an environment name.
// Unknown names get DefaultConfig tagged with that name.
func ConfigForEnvironment(env string) Config {
	switch strings.ToLower(env) {
	case EnvironmentProduction, "production":
		return ProductionConfig()
	case EnvironmentDev, "development":
		return DevelopmentConfig()
	case EnvironmentTest:
		cfg := DefaultConfig()
		cfg.Level = LogLevelWarn
		cfg.Environment = EnvironmentTest
		return cfg
	default:
		cfg := DefaultConfig()
		if env != "" {
			cfg.Environment = env
		}
		return cfg
	}
}

// WithOverrides returns a copy of c with every non-empty argument applied.
func (c Config) WithOverrides(level, format, serviceName, version string) Config {
	if level != "" {
		c.Level = level
	}
	if format != "" {
		c.Format = format
	}
	if serviceName != "" {
		c.ServiceName = serviceName
	}
	if version != "" {
		c.Version = version
	}
	return c
}

// ProductionConfig returns production-ready defaults
func ProductionConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: DefaultServiceName,
		Version:     ProductionVersion,
		Environment: EnvironmentProduction,
		AddSource:   false,
	}
}

// DevelopmentConfig returns development-friendly defaults
func DevelopmentConfig() Config {
	return Config{
		Level:       LogLevelDebug,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		AddSource:   true,
	}
}

// DefaultConfig returns defaults (fallback when no config provided)
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		AddSource:   false,
	}
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns common attributes to add to all logs
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
