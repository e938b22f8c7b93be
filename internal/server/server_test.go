package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodnney/biotech-x/apis/common"
	"github.com/rodnney/biotech-x/apis/health"
	"github.com/rodnney/biotech-x/internal/config"
	"github.com/rodnney/biotech-x/pkg/status"
)

func testConfig(service config.Service, apiURL string) *config.Config {
	return &config.Config{
		Service:       service,
		Port:          "0",
		Environment:   "test",
		LogLevel:      "info",
		HealthMessage: "ok from " + string(service),
		Status: config.StatusConfig{
			APIURL:  apiURL,
			Timeout: config.DefaultStatusTimeout,
		},
		CORS:            config.CORSConfig{AllowOrigins: config.DefaultCORSOrigins},
		ShutdownTimeout: config.DefaultShutdownTimeout,
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestNewAPI_Routes(t *testing.T) {
	srv, err := NewAPI(testConfig(config.ServiceAPI, config.DefaultAPIURL))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	app := srv.App()

	t.Run("health", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/health", "")
		require.Equal(t, fiber.StatusOK, code)

		var doc health.HealthResponse
		require.NoError(t, json.Unmarshal(body, &doc))
		assert.Equal(t, health.StatusHealthy, doc.Status)
		assert.Equal(t, "ok from api", doc.Message)
		assert.Equal(t, "test", doc.Environment)
		assert.NotEmpty(t, doc.Timestamp)
	})

	t.Run("root", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/", "")
		require.Equal(t, fiber.StatusOK, code)

		var root map[string]string
		require.NoError(t, json.Unmarshal(body, &root))
		assert.Equal(t, "Biotech-X API", root["message"])
		assert.Equal(t, "/docs", root["docs"])
		assert.NotEmpty(t, root["version"])
	})

	t.Run("analysis round trip", func(t *testing.T) {
		code, body := doRequest(t, app, "POST", "/api/v1/analysis", `{"sample_name":"test_sample","file_urls":["https://example.com/file1.txt"]}`)
		require.Equal(t, fiber.StatusOK, code)

		var created map[string]string
		require.NoError(t, json.Unmarshal(body, &created))
		assert.Equal(t, "queued", created["status"])

		code, _ = doRequest(t, app, "GET", "/api/v1/analysis/"+created["analysis_id"], "")
		assert.Equal(t, fiber.StatusOK, code)
	})

	t.Run("error shape", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/api/v1/analysis/unknown", "")
		require.Equal(t, fiber.StatusNotFound, code)

		var errResp common.ErrorResponse
		require.NoError(t, json.Unmarshal(body, &errResp))
		assert.True(t, errResp.Error)
		assert.Equal(t, "Analysis not found", errResp.Message)
	})

	t.Run("metrics", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/metrics", "")
		require.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, string(body), `biotechx_http_requests_total`)
		assert.Contains(t, string(body), `path="/health"`)
	})
}

func TestNewAPI_CORS(t *testing.T) {
	srv, err := NewAPI(testConfig(config.ServiceAPI, config.DefaultAPIURL))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := srv.App().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCorsConfig_Wildcard(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
}

func TestNewFrontend_Routes(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy","message":"tudo ok","environment":"test"}`)
	}))
	defer backend.Close()

	srv, err := NewFrontend(testConfig(config.ServiceFrontend, backend.URL))
	require.NoError(t, err)
	defer srv.Shutdown(context.Background())
	app := srv.App()

	t.Run("health mirror", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/api/health", "")
		require.Equal(t, fiber.StatusOK, code)

		var doc health.HealthResponse
		require.NoError(t, json.Unmarshal(body, &doc))
		assert.Equal(t, "ok from frontend", doc.Message)
	})

	t.Run("landing page", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/", "")
		require.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, string(body), status.TextOnlinePrefix+"tudo ok")
	})

	t.Run("status report", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/api/status", "")
		require.Equal(t, fiber.StatusOK, code)

		var report status.Report
		require.NoError(t, json.Unmarshal(body, &report))
		assert.Equal(t, status.StateOnline, report.State)
	})

	t.Run("status checks counted", func(t *testing.T) {
		code, body := doRequest(t, app, "GET", "/metrics", "")
		require.Equal(t, fiber.StatusOK, code)
		assert.Contains(t, string(body), `biotechx_status_checks_total{service="frontend",state="online"}`)
	})
}

func TestNewAPI_RedisUnreachable(t *testing.T) {
	cfg := testConfig(config.ServiceAPI, config.DefaultAPIURL)
	cfg.Storage.Redis = config.RedisYAMLConfig{Enabled: true, Address: "127.0.0.1:1", KeyPrefix: "test"}

	srv, err := NewAPI(cfg)
	assert.Error(t, err)
	assert.Nil(t, srv)
}
