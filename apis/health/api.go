package health

import (
	"github.com/gofiber/fiber/v2"
)

// Paths the health document is served under.
const (
	// APIPath is the API service health endpoint
	APIPath = "/health"

	// MirrorPath is the frontend's local health mirror
	MirrorPath = "/api/health"
)

// RegisterRoutes mounts handler at path.
func RegisterRoutes(router fiber.Router, path string, handler *Handler) {
	router.Get(path, handler.Health)
}
