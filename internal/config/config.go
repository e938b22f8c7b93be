package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Flags defines the interface for command-line flag access. Empty values
// mean the flag was not given.
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
	GetAPIURL() string
	GetConfigFile() string
}

// Load resolves the configuration of service without command-line flags.
func Load(service Service) (*Config, error) {
	return LoadWithFlags(service, nil)
}

// LoadWithFlags resolves the configuration of service.
//
// Configuration precedence (highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. YAML configuration file
//  4. Default values
//
// The returned Config has been validated.
func LoadWithFlags(service Service, flgs Flags) (*Config, error) {
	var envCfg EnvConfig
	if err := env.Parse(&envCfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrParseEnv, err)
	}

	path, explicit := DefaultConfigFile, false
	if envCfg.ConfigFile != "" {
		path, explicit = envCfg.ConfigFile, true
	}
	if flgs != nil && flgs.GetConfigFile() != "" {
		path, explicit = flgs.GetConfigFile(), true
	}

	yamlConfig, err := loadFromYAML(path, explicit)
	if err != nil {
		return nil, err
	}

	cfg := defaults(service)
	if err := cfg.applyYAML(yamlConfig); err != nil {
		return nil, err
	}
	cfg.applyEnv(&envCfg)
	cfg.applyFlags(flgs)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults(service Service) *Config {
	cfg := &Config{
		Service:       service,
		Port:          DefaultAPIPort,
		Environment:   DefaultEnvironment,
		LogLevel:      DefaultLogLevel,
		HealthMessage: DefaultAPIHealthMessage,
		Status: StatusConfig{
			APIURL:  DefaultAPIURL,
			Timeout: DefaultStatusTimeout,
		},
		CORS: CORSConfig{
			AllowOrigins: slices.Clone(DefaultCORSOrigins),
		},
		Storage: StorageConfig{
			Redis: RedisYAMLConfig{
				KeyPrefix: DefaultRedisKeyPrefix,
			},
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	if service == ServiceFrontend {
		cfg.Port = DefaultFrontendPort
		cfg.HealthMessage = DefaultFrontendHealthMessage
	}
	return cfg
}

func (c *Config) applyYAML(y *YAMLConfig) error {
	setString(&c.Environment, y.Server.Environment)
	setString(&c.LogLevel, y.Server.LogLevel)
	if err := setDuration(&c.ShutdownTimeout, y.Server.ShutdownTimeout, "server.shutdown_timeout"); err != nil {
		return err
	}

	switch c.Service {
	case ServiceFrontend:
		setString(&c.Port, y.Frontend.Port)
		setString(&c.HealthMessage, y.Frontend.HealthMessage)
		setString(&c.Status.APIURL, y.Frontend.APIURL)
		if err := setDuration(&c.Status.Timeout, y.Frontend.StatusTimeout, "frontend.status_timeout"); err != nil {
			return err
		}
	default:
		setString(&c.Port, y.API.Port)
		setString(&c.HealthMessage, y.API.HealthMessage)
	}

	if len(y.API.CORSOrigins) > 0 {
		c.CORS.AllowOrigins = y.API.CORSOrigins
	}

	redis := y.Storage.Redis
	c.Storage.Redis.Enabled = redis.Enabled
	c.Storage.Redis.Address = redis.Address
	c.Storage.Redis.Password = redis.Password
	c.Storage.Redis.Database = redis.Database
	setString(&c.Storage.Redis.KeyPrefix, redis.KeyPrefix)
	return nil
}

func (c *Config) applyEnv(e *EnvConfig) {
	setString(&c.Port, e.Port)
	setString(&c.Environment, e.Environment)
	setString(&c.LogLevel, e.LogLevel)
	setString(&c.HealthMessage, e.HealthMessage)
	setString(&c.Status.APIURL, e.APIURL)
	if e.StatusTimeout > 0 {
		c.Status.Timeout = e.StatusTimeout
	}
	if e.ShutdownTimeout > 0 {
		c.ShutdownTimeout = e.ShutdownTimeout
	}
	if len(e.CORSOrigins) > 0 {
		c.CORS.AllowOrigins = e.CORSOrigins
	}

	// Redis address from REDIS_HOST/REDIS_PORT wins over the YAML address
	if e.RedisHost != "" {
		port := e.RedisPort
		if port == "" {
			port = DefaultRedisPort
		}
		c.Storage.Redis.Address = e.RedisHost + ":" + port
	}
	setString(&c.Storage.Redis.Password, e.RedisPassword)
}

func (c *Config) applyFlags(flgs Flags) {
	if flgs == nil {
		return
	}
	setString(&c.Port, flgs.GetPort())
	setString(&c.Environment, flgs.GetEnvironment())
	setString(&c.LogLevel, flgs.GetLogLevel())
	setString(&c.Status.APIURL, flgs.GetAPIURL())
}

// Validate checks the resolved configuration for values no service can run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%s: port cannot be empty", ErrInvalidConfig)
	}
	if n, err := strconv.Atoi(c.Port); err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%s: invalid port %q", ErrInvalidConfig, c.Port)
	}

	if strings.TrimSpace(c.Environment) == "" {
		return fmt.Errorf("%s: environment cannot be empty", ErrInvalidConfig)
	}

	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("%s: invalid log level: %s (must be one of: %s)",
			ErrInvalidConfig, c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	u, err := url.Parse(c.Status.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s: api url must be an absolute http(s) URL, got %q", ErrInvalidConfig, c.Status.APIURL)
	}

	if c.Status.Timeout <= 0 {
		return fmt.Errorf("%s: status timeout must be positive", ErrInvalidConfig)
	}

	if c.Storage.Redis.Enabled && c.Storage.Redis.Address == "" {
		return fmt.Errorf("%s: redis storage enabled without an address", ErrInvalidConfig)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadFromYAML(path string, explicit bool) (*YAMLConfig, error) {
	config := &YAMLConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("%s %s: %w", ErrReadConfigFile, path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrParseConfigFile, path, err)
	}
	return config, nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setDuration(dst *time.Duration, value, field string) error {
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ErrParseConfigFile, field, err)
	}
	*dst = d
	return nil
}
