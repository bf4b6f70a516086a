package events

import (
	"errors"

	"lab-admin/core/docstore"
	"lab-admin/core/logger"
	"lab-admin/core/request"
	"lab-admin/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for events.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the event routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/events")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the whole events document.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	doc, err := h.service.Document(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load")
	}
	return c.JSON(doc)
}

// HandleCreate adds an event.
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in EventInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	e, err := h.service.Create(c.Context(), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"event": e})
}

// HandleUpdate replaces an event.
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var in EventInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	e, err := h.service.Update(c.Context(), c.Params("id"), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"event": e})
}

// HandleDelete removes an event.
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, nil)
}

func (h *Handler) fail(c *fiber.Ctx, err error, storeMsg string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, "Event not found")
	case errors.Is(err, docstore.ErrConflict):
		return response.Error(c, fiber.StatusConflict, "Document was modified concurrently, retry")
	default:
		logger.WithRayID(h.service.logger, c).Error("Events store failure", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, storeMsg)
	}
}
