package analysis

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the analysis intake endpoints under /api/v1/analysis.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	group := app.Group("/api/v1/analysis")

	group.Post("", handler.CreateAnalysis)
	group.Get("/:id", handler.GetAnalysis)
}
