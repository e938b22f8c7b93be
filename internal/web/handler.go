package web

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/rodnney/biotech-x/pkg/status"
)

// Handler serves the landing page and the machine-readable status report.
// Every request is one status reporter activation.
type Handler struct {
	reporter    *status.Reporter
	environment string
	apiURL      string
}

// NewHandler creates the landing page handler.
func NewHandler(reporter *status.Reporter, environment, apiURL string) *Handler {
	return &Handler{
		reporter:    reporter,
		environment: environment,
		apiURL:      apiURL,
	}
}

// Index handles GET / and renders the landing page.
func (h *Handler) Index(c *fiber.Ctx) error {
	report := h.reporter.Check(c.UserContext())

	var buf bytes.Buffer
	if err := Render(&buf, NewPage(report, h.environment, h.apiURL)); err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Status handles GET /api/status and returns the report as JSON.
func (h *Handler) Status(c *fiber.Ctx) error {
	return c.JSON(h.reporter.Check(c.UserContext()))
}

// RegisterRoutes mounts the landing page routes.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Index)
	app.Get("/api/status", handler.Status)
}
