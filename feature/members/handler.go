package members

import (
	"errors"

	"lab-admin/core/docstore"
	"lab-admin/core/logger"
	"lab-admin/core/request"
	"lab-admin/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for members and the contact person.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the member routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/members")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)

	app.Put("/api/contact-person", h.HandleContactPerson)
}

// HandleList returns the whole members document.
// @Summary List Members
// @Tags members
// @Produce json
// @Success 200 {object} Document
// @Router /api/members [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	doc, err := h.service.Document(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load")
	}
	return c.JSON(doc)
}

// HandleCreate adds a member.
// @Summary Create Member
// @Tags members
// @Accept json
// @Param body body MemberInput true "Member"
// @Success 200 {object} map[string]any
// @Router /api/members [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in MemberInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	m, err := h.service.Create(c.Context(), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"member": m})
}

// HandleUpdate replaces a member.
// @Summary Update Member
// @Tags members
// @Param id path string true "Member ID (e.g. 'm007')"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/members/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var in MemberInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	m, err := h.service.Update(c.Context(), c.Params("id"), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"member": m})
}

// HandleDelete removes a member.
// @Summary Delete Member
// @Tags members
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/members/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, nil)
}

// HandleContactPerson copies a member into contact_person.
// @Summary Set Contact Person
// @Tags members
// @Param body body ContactPersonInput true "Member reference"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/contact-person [put]
func (h *Handler) HandleContactPerson(c *fiber.Ctx) error {
	var in ContactPersonInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	cp, err := h.service.SetContactPerson(c.Context(), in.MemberID)
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"contact_person": cp})
}

func (h *Handler) fail(c *fiber.Ctx, err error, storeMsg string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, "Member not found")
	case errors.Is(err, docstore.ErrConflict):
		return response.Error(c, fiber.StatusConflict, "Document was modified concurrently, retry")
	default:
		logger.WithRayID(h.service.logger, c).Error("Members store failure", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, storeMsg)
	}
}
