package analysis

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rodnney/biotech-x/pkg/logger"
	"github.com/rodnney/biotech-x/pkg/storage"
)

// Handler accepts analysis requests and serves their records. Nothing is
// processed: requests are stored as queued.
type Handler struct {
	store storage.Store
	now   func() time.Time
	newID func() string
}

// NewHandler creates an analysis handler backed by store.
func NewHandler(store storage.Store) *Handler {
	return &Handler{
		store: store,
		now:   time.Now,
		newID: func() string { return IDPrefix + uuid.NewString() },
	}
}

// CreateAnalysis handles POST /api/v1/analysis.
// Empty sample names and file lists are accepted.
func (h *Handler) CreateAnalysis(c *fiber.Ctx) error {
	var req AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, ErrInvalidRequest)
	}

	if req.AnalysisType == "" {
		req.AnalysisType = DefaultAnalysisType
	}
	if req.FileURLs == nil {
		req.FileURLs = []string{}
	}

	record := &storage.AnalysisRecord{
		ID:           h.newID(),
		SampleName:   req.SampleName,
		FileURLs:     req.FileURLs,
		AnalysisType: req.AnalysisType,
		Status:       StatusQueued,
		Progress:     0,
		CreatedAt:    h.now().UTC(),
	}

	if err := h.store.SaveAnalysis(c.UserContext(), record); err != nil {
		logger.Errorf("Failed to create analysis for sample %s: %v", req.SampleName, err)
		return fiber.NewError(fiber.StatusInternalServerError, ErrCreateFailed)
	}

	logger.Infof("Creating analysis for sample: %s", req.SampleName)

	return c.JSON(AnalysisResponse{
		AnalysisID: record.ID,
		Status:     record.Status,
		Message:    "Análise criada para amostra " + req.SampleName,
	})
}

// GetAnalysis handles GET /api/v1/analysis/:id.
func (h *Handler) GetAnalysis(c *fiber.Ctx) error {
	id := c.Params("id")

	record, err := h.store.GetAnalysis(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, ErrNotFound)
		}
		logger.Errorf("Failed to get analysis %s: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, ErrLookupFailed)
	}

	return c.JSON(record)
}
