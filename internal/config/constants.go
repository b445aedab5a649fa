package config

// Environment variable names
const (
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvEnvironment = "ENVIRONMENT"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
)

// Defaults
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultServiceName = "rating-table"
	DefaultVersion     = "dev"
)

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)
