package logger

import (
	"github.com/rodnney/biotech-x/internal/config"
)

// FromConfig derives logger settings from the application config.
// Production deployments log JSON, everything else logs to a colored console.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	if cfg.LogLevel != "" {
		loggerConfig.Level = LogLevel(cfg.LogLevel)
	}

	if cfg.Environment == config.ValidEnvironmentProduction {
		loggerConfig.Format = FormatJSON
	}

	return loggerConfig
}

// InitFromConfig initializes the global logger from the application config.
func InitFromConfig(cfg *config.Config) error {
	return Init(FromConfig(cfg))
}
