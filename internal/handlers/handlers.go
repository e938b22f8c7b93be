package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rodnney/biotech-x/apis/analysis"
	"github.com/rodnney/biotech-x/apis/health"
	"github.com/rodnney/biotech-x/internal/version"
	"github.com/rodnney/biotech-x/internal/web"
	"github.com/rodnney/biotech-x/pkg/metrics"
)

// APIRoutes holds the handlers the API service exposes.
type APIRoutes struct {
	Health   *health.Handler
	Analysis *analysis.Handler
	Metrics  *metrics.Metrics
}

// FrontendRoutes holds the handlers the frontend service exposes.
type FrontendRoutes struct {
	Health  *health.Handler
	Page    *web.Handler
	Metrics *metrics.Metrics
}

// SetupAPIRoutes configures all HTTP routes of the API service.
func SetupAPIRoutes(app *fiber.App, routes APIRoutes) {
	health.RegisterRoutes(app, health.APIPath, routes.Health)
	analysis.RegisterRoutes(app, routes.Analysis)
	app.Get("/metrics", routes.Metrics.Handler())

	app.Get("/", RootHandler)
}

// SetupFrontendRoutes configures all HTTP routes of the frontend service.
func SetupFrontendRoutes(app *fiber.App, routes FrontendRoutes) {
	health.RegisterRoutes(app, health.MirrorPath, routes.Health)
	web.RegisterRoutes(app, routes.Page)
	app.Get("/metrics", routes.Metrics.Handler())
}

// RootHandler handles GET / of the API service with basic service information.
func RootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Biotech-X API",
		"version": version.GetShortVersion(),
		"docs":    "/docs",
	})
}
