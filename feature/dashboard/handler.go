package dashboard

import (
	"lab-admin/core/logger"
	"lab-admin/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard counters.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the dashboard routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/stats", h.HandleStats)
}

// HandleStats returns collection counts.
// @Summary Dashboard Stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Stats failed", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, "Failed to load")
	}
	return response.OK(c, fiber.Map{"stats": stats})
}
