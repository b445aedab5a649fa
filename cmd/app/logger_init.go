package main

import (
	"github.com/osse101/RatingTable_Go/internal/config"
	"github.com/osse101/RatingTable_Go/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(loggerConfigFor(cfg))
}

// loggerConfigFor starts from the environment's logger defaults and applies
// the explicitly configured values on top.
func loggerConfigFor(cfg *config.Config) logger.Config {
	loggerConfig := logger.ConfigForEnvironment(cfg.Environment).WithOverrides(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
	)
	loggerConfig.AddSource = cfg.IsDevelopment()
	return loggerConfig
}
