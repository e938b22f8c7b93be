package health

import (
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// DefaultEnvironment is reported when Config.Environment is empty.
const DefaultEnvironment = "development"

// Handler serves health documents. It is safe for concurrent use.
type Handler struct {
	message     string
	environment string
	now         func() time.Time

	// lastMillis is the newest timestamp issued, in Unix milliseconds
	lastMillis atomic.Int64
}

// NewHandler creates a health handler reporting the configured message and
// environment label.
func NewHandler(cfg Config) *Handler {
	environment := cfg.Environment
	if environment == "" {
		environment = DefaultEnvironment
	}

	return &Handler{
		message:     cfg.Message,
		environment: environment,
		now:         time.Now,
	}
}

// Status builds a fresh health document. Timestamps never decrease across
// calls, even if the wall clock steps backwards.
func (h *Handler) Status() HealthResponse {
	return HealthResponse{
		Status:      StatusHealthy,
		Message:     h.message,
		Timestamp:   h.timestamp().Format(TimestampLayout),
		Environment: h.environment,
	}
}

func (h *Handler) timestamp() time.Time {
	now := h.now().UnixMilli()
	for {
		last := h.lastMillis.Load()
		if now < last {
			now = last
		}
		if h.lastMillis.CompareAndSwap(last, now) {
			return time.UnixMilli(now).UTC()
		}
	}
}

// Health handles GET requests for the health document.
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(h.Status())
}
