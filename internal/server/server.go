package server

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rodnney/biotech-x/apis/analysis"
	"github.com/rodnney/biotech-x/apis/common"
	"github.com/rodnney/biotech-x/apis/health"
	"github.com/rodnney/biotech-x/internal/config"
	"github.com/rodnney/biotech-x/internal/handlers"
	"github.com/rodnney/biotech-x/internal/version"
	"github.com/rodnney/biotech-x/internal/web"
	"github.com/rodnney/biotech-x/pkg/logger"
	"github.com/rodnney/biotech-x/pkg/metrics"
	"github.com/rodnney/biotech-x/pkg/status"
	"github.com/rodnney/biotech-x/pkg/storage"
)

// Server is one running service: the Fiber application plus the resources
// it owns.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the service configuration
	cfg *config.Config

	// store holds analysis records (API service only)
	store storage.Store

	// metrics is the service's Prometheus registry
	metrics *metrics.Metrics
}

// NewAPI builds the API service: health endpoint, analysis intake and metrics.
func NewAPI(cfg *config.Config) (*Server, error) {
	store, err := storage.NewManager(storage.StorageConfig{
		Redis: storage.RedisConfig{
			Enabled:   cfg.Storage.Redis.Enabled,
			Address:   cfg.Storage.Redis.Address,
			Password:  cfg.Storage.Redis.Password,
			Database:  cfg.Storage.Redis.Database,
			KeyPrefix: cfg.Storage.Redis.KeyPrefix,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize analysis storage: %w", err)
	}

	m := metrics.New(string(config.ServiceAPI))
	app := newApp(cfg, m)
	app.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))

	handlers.SetupAPIRoutes(app, handlers.APIRoutes{
		Health: health.NewHandler(health.Config{
			Message:     cfg.HealthMessage,
			Environment: cfg.Environment,
		}),
		Analysis: analysis.NewHandler(store),
		Metrics:  m,
	})

	return &Server{app: app, cfg: cfg, store: store, metrics: m}, nil
}

// NewFrontend builds the frontend service: landing page, health mirror,
// status report and metrics.
func NewFrontend(cfg *config.Config) (*Server, error) {
	m := metrics.New(string(config.ServiceFrontend))
	app := newApp(cfg, m)

	reporter := status.NewReporter(status.Config{
		APIURL:    cfg.Status.APIURL,
		Timeout:   cfg.Status.Timeout,
		UserAgent: "biotech-x-frontend/" + version.GetShortVersion(),
	}, status.WithRecorder(m))

	handlers.SetupFrontendRoutes(app, handlers.FrontendRoutes{
		Health: health.NewHandler(health.Config{
			Message:     cfg.HealthMessage,
			Environment: cfg.Environment,
		}),
		Page:    web.NewHandler(reporter, cfg.Environment, cfg.Status.APIURL),
		Metrics: m,
	})

	logger.Infof("Status reporter target: %s (timeout: %s)", reporter.Target(), cfg.Status.Timeout)

	return &Server{app: app, cfg: cfg, metrics: m}, nil
}

// newApp creates a Fiber app with the shared JSON codec, error handler and
// middleware.
func newApp(cfg *config.Config, m *metrics.Metrics) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               fmt.Sprintf("Biotech-X %s %s", cfg.Service, version.GetVersion()),
		DisableStartupMessage: cfg.Environment == config.ValidEnvironmentProduction,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(m.Middleware())
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		logger.Errorf("%s %s failed: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(common.ErrorResponse{
		Error:   true,
		Message: err.Error(),
	})
}

// corsConfig allows credentials only for explicit origins; Fiber rejects
// credentials combined with a wildcard.
func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: !slices.Contains(origins, "*"),
	}
}

// App exposes the Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start listens on the configured port and blocks until the server stops.
func (s *Server) Start() error {
	return s.app.Listen(s.cfg.Addr())
}

// Run starts the server and shuts it down gracefully once ctx is done.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		return err
	case <-ctx.Done():
	}

	logger.Infof("Shutting down %s service (timeout: %s)", s.cfg.Service, s.cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires and releases the storage connection.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.app.ShutdownWithContext(ctx)
	s.closeStore()
	return err
}

func (s *Server) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		logger.Warnf("Failed to close analysis storage: %v", err)
	}
}
