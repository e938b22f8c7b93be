package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlags struct {
	port, environment, logLevel, apiURL, configFile string
}

func (s stubFlags) GetPort() string        { return s.port }
func (s stubFlags) GetEnvironment() string { return s.environment }
func (s stubFlags) GetLogLevel() string    { return s.logLevel }
func (s stubFlags) GetAPIURL() string      { return s.apiURL }
func (s stubFlags) GetConfigFile() string  { return s.configFile }

// clearEnv blanks every variable the loader reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "ENVIRONMENT", "LOG_LEVEL", "HEALTH_MESSAGE", "API_URL",
		"STATUS_TIMEOUT", "SHUTDOWN_TIMEOUT", "CORS_ALLOW_ORIGINS",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name            string
		service         Service
		expectedPort    string
		expectedMessage string
	}{
		{
			name:            "api service",
			service:         ServiceAPI,
			expectedPort:    DefaultAPIPort,
			expectedMessage: DefaultAPIHealthMessage,
		},
		{
			name:            "frontend service",
			service:         ServiceFrontend,
			expectedPort:    DefaultFrontendPort,
			expectedMessage: DefaultFrontendHealthMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.service)
			require.NoError(t, err)

			assert.Equal(t, tt.service, cfg.Service)
			assert.Equal(t, tt.expectedPort, cfg.Port)
			assert.Equal(t, tt.expectedMessage, cfg.HealthMessage)
			assert.Equal(t, DefaultEnvironment, cfg.Environment)
			assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
			assert.Equal(t, DefaultAPIURL, cfg.Status.APIURL)
			assert.Equal(t, DefaultStatusTimeout, cfg.Status.Timeout)
			assert.Equal(t, DefaultCORSOrigins, cfg.CORS.AllowOrigins)
			assert.False(t, cfg.Storage.Redis.Enabled)
			assert.Equal(t, DefaultRedisKeyPrefix, cfg.Storage.Redis.KeyPrefix)
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  environment: staging
  log_level: warn
frontend:
  port: "4000"
  api_url: http://yaml:8000
  status_timeout: 3s
`)

	t.Run("yaml over defaults", func(t *testing.T) {
		cfg, err := LoadWithFlags(ServiceFrontend, stubFlags{configFile: path})
		require.NoError(t, err)

		assert.Equal(t, "4000", cfg.Port)
		assert.Equal(t, "staging", cfg.Environment)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "http://yaml:8000", cfg.Status.APIURL)
		assert.Equal(t, 3*time.Second, cfg.Status.Timeout)
	})

	t.Run("env over yaml", func(t *testing.T) {
		t.Setenv("API_URL", "http://env:8000")
		t.Setenv("ENVIRONMENT", "production")
		t.Setenv("STATUS_TIMEOUT", "7s")

		cfg, err := LoadWithFlags(ServiceFrontend, stubFlags{configFile: path})
		require.NoError(t, err)

		assert.Equal(t, "http://env:8000", cfg.Status.APIURL)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 7*time.Second, cfg.Status.Timeout)
		assert.Equal(t, "4000", cfg.Port)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("API_URL", "http://env:8000")
		t.Setenv("PORT", "5000")

		cfg, err := LoadWithFlags(ServiceFrontend, stubFlags{
			configFile: path,
			port:       "6000",
			apiURL:     "http://flag:8000",
			logLevel:   "debug",
		})
		require.NoError(t, err)

		assert.Equal(t, "6000", cfg.Port)
		assert.Equal(t, "http://flag:8000", cfg.Status.APIURL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoad_ServiceSections(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
api:
  port: "9000"
  health_message: api ok
frontend:
  port: "9001"
  health_message: frontend ok
`)
	t.Setenv("CONFIG_FILE", path)

	apiCfg, err := Load(ServiceAPI)
	require.NoError(t, err)
	assert.Equal(t, "9000", apiCfg.Port)
	assert.Equal(t, "api ok", apiCfg.HealthMessage)

	frontendCfg, err := Load(ServiceFrontend)
	require.NoError(t, err)
	assert.Equal(t, "9001", frontendCfg.Port)
	assert.Equal(t, "frontend ok", frontendCfg.HealthMessage)
}

func TestLoad_RedisFromEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage:
  redis:
    enabled: true
    address: yaml-redis:6379
`)

	tests := []struct {
		name     string
		host     string
		port     string
		expected string
	}{
		{name: "yaml address", expected: "yaml-redis:6379"},
		{name: "host only uses default port", host: "redis", expected: "redis:6379"},
		{name: "host and port", host: "redis", port: "6380", expected: "redis:6380"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_HOST", tt.host)
			t.Setenv("REDIS_PORT", tt.port)

			cfg, err := LoadWithFlags(ServiceAPI, stubFlags{configFile: path})
			require.NoError(t, err)
			assert.True(t, cfg.Storage.Redis.Enabled)
			assert.Equal(t, tt.expected, cfg.Storage.Redis.Address)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadWithFlags(ServiceAPI, stubFlags{configFile: filepath.Join(t.TempDir(), "nope.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrReadConfigFile)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "server: [unterminated")
		_, err := LoadWithFlags(ServiceAPI, stubFlags{configFile: path})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrParseConfigFile)
	})

	t.Run("bad duration", func(t *testing.T) {
		path := writeConfig(t, "frontend:\n  status_timeout: soon\n")
		_, err := LoadWithFlags(ServiceFrontend, stubFlags{configFile: path})
		require.Error(t, err)
	})

	t.Run("invalid log level flag", func(t *testing.T) {
		_, err := LoadWithFlags(ServiceAPI, stubFlags{logLevel: "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrInvalidConfig)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config { return defaults(ServiceFrontend) }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "free-text environment", mutate: func(c *Config) { c.Environment = "test" }},
		{name: "empty port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "non-numeric port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "empty environment", mutate: func(c *Config) { c.Environment = " " }, wantErr: true},
		{name: "relative api url", mutate: func(c *Config) { c.Status.APIURL = "localhost:8000" }, wantErr: true},
		{name: "ftp api url", mutate: func(c *Config) { c.Status.APIURL = "ftp://host" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Status.Timeout = 0 }, wantErr: true},
		{
			name: "redis without address",
			mutate: func(c *Config) {
				c.Storage.Redis.Enabled = true
				c.Storage.Redis.Address = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{Port: "8000"}
	assert.Equal(t, ":8000", cfg.Addr())
}
