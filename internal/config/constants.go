package config

import "time"

// Service identifies which binary a Config is resolved for.
type Service string

const (
	// ServiceAPI is the backend serving the health endpoint and analysis intake.
	ServiceAPI Service = "api"

	// ServiceFrontend is the display layer serving the landing page.
	ServiceFrontend Service = "frontend"
)

// Default configuration values
const (
	// DefaultAPIPort is the default HTTP port of the API service
	DefaultAPIPort = "8000"

	// DefaultFrontendPort is the default HTTP port of the frontend service
	DefaultFrontendPort = "3000"

	// DefaultEnvironment is the default deployment environment label
	DefaultEnvironment = "development"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"

	// DefaultAPIURL is the backend base address queried by the status reporter
	DefaultAPIURL = "http://localhost:8000"

	// DefaultAPIHealthMessage is reported by the API service health endpoint
	DefaultAPIHealthMessage = "API funcionando corretamente"

	// DefaultFrontendHealthMessage is reported by the frontend health mirror
	DefaultFrontendHealthMessage = "Frontend funcionando corretamente"

	// DefaultStatusTimeout bounds a single status reporter query
	DefaultStatusTimeout = 10 * time.Second

	// DefaultShutdownTimeout bounds graceful server shutdown
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultConfigFile is read when no other path is given
	DefaultConfigFile = "configs/config.yaml"

	// DefaultRedisKeyPrefix namespaces every Redis key
	DefaultRedisKeyPrefix = "biotech-x"

	// DefaultRedisPort is appended when only REDIS_HOST is set
	DefaultRedisPort = "6379"
)

// DefaultCORSOrigins are the browser origins allowed to call the API service.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://frontend:3000"}

// Well-known environment values. Any non-empty label is accepted; production
// switches the logger to JSON output.
const (
	ValidEnvironmentDevelopment = "development"
	ValidEnvironmentProduction  = "production"
)

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)

// ValidLogLevels lists every accepted log level.
var ValidLogLevels = []string{ValidLogLevelDebug, ValidLogLevelInfo, ValidLogLevelWarn, ValidLogLevelError}

// Error messages
const (
	ErrReadConfigFile  = "failed to read config file"
	ErrParseConfigFile = "failed to parse config file"
	ErrParseEnv        = "failed to parse environment variables"
	ErrInvalidConfig   = "invalid configuration"
)
