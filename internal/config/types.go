package config

import "time"

// Config is the resolved configuration of one service. It is built once in
// main and handed to every constructor.
type Config struct {
	// Service this configuration was resolved for
	Service Service

	// HTTP listen port (e.g., "8000")
	Port string

	// Deployment-mode label reported by health documents (e.g., "development")
	Environment string

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string

	// Message reported by this service's health endpoint
	HealthMessage string

	// Status reporter settings (used by the frontend service)
	Status StatusConfig

	// Allowed CORS origins
	CORS CORSConfig

	// Analysis record storage (used by the API service)
	Storage StorageConfig

	// Graceful shutdown bound
	ShutdownTimeout time.Duration
}

// StatusConfig holds the status reporter settings.
type StatusConfig struct {
	// Backend base address; the reporter queries <APIURL>/health
	APIURL string

	// Timeout of the single outbound query
	Timeout time.Duration
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowOrigins []string
}

// StorageConfig holds configuration for analysis record storage.
type StorageConfig struct {
	// Redis storage configuration
	Redis RedisYAMLConfig `yaml:"redis"`
}

// RedisYAMLConfig represents Redis configuration from YAML files.
type RedisYAMLConfig struct {
	// Whether Redis storage is enabled; the in-memory store is used otherwise
	Enabled bool `yaml:"enabled"`

	// Redis server address (e.g., "localhost:6379")
	Address string `yaml:"address"`

	// Redis password for authentication
	Password string `yaml:"password"`

	// Redis database number (0-15)
	Database int `yaml:"database"`

	// Key prefix for all Redis keys (e.g., "biotech-x")
	KeyPrefix string `yaml:"key_prefix"`
}

// ServerYAMLConfig holds settings shared by both services.
type ServerYAMLConfig struct {
	Environment     string `yaml:"environment"`
	LogLevel        string `yaml:"log_level"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// APIYAMLConfig holds API service settings.
type APIYAMLConfig struct {
	Port          string   `yaml:"port"`
	HealthMessage string   `yaml:"health_message"`
	CORSOrigins   []string `yaml:"cors_allow_origins"`
}

// FrontendYAMLConfig holds frontend service settings.
type FrontendYAMLConfig struct {
	Port          string `yaml:"port"`
	HealthMessage string `yaml:"health_message"`
	APIURL        string `yaml:"api_url"`
	StatusTimeout string `yaml:"status_timeout"`
}

// YAMLConfig is the layout of configs/config.yaml.
type YAMLConfig struct {
	Server   ServerYAMLConfig   `yaml:"server"`
	API      APIYAMLConfig      `yaml:"api"`
	Frontend FrontendYAMLConfig `yaml:"frontend"`
	Storage  StorageConfig      `yaml:"storage"`
}

// EnvConfig holds the environment variable overrides. Empty values leave the
// YAML or default value in place.
type EnvConfig struct {
	ConfigFile      string        `env:"CONFIG_FILE"`
	Port            string        `env:"PORT"`
	Environment     string        `env:"ENVIRONMENT"`
	LogLevel        string        `env:"LOG_LEVEL"`
	HealthMessage   string        `env:"HEALTH_MESSAGE"`
	APIURL          string        `env:"API_URL"`
	StatusTimeout   time.Duration `env:"STATUS_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	CORSOrigins     []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	RedisHost       string        `env:"REDIS_HOST"`
	RedisPort       string        `env:"REDIS_PORT"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
}
