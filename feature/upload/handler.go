package upload

import (
	"errors"

	"lab-admin/core/logger"
	"lab-admin/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles uploads and asset downloads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/upload", h.HandleUpload)
	app.Get("/asset/*", h.HandleAsset)
}

// HandleUpload stores one image.
// @Summary Upload Image
// @Tags upload
// @Accept multipart/form-data
// @Param file formData file true "Image (png, jpg, jpeg, gif)"
// @Param type formData string false "member, event or general"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fh, _ := c.FormFile("file")

	p, err := h.service.Upload(c.Context(), fh, c.FormValue("type", "member"))
	switch {
	case err == nil:
		return response.OK(c, fiber.Map{"path": p})
	case errors.Is(err, ErrNoFile):
		return response.Error(c, fiber.StatusBadRequest, "No file part")
	case errors.Is(err, ErrNoFilename):
		return response.Error(c, fiber.StatusBadRequest, "No selected file")
	case errors.Is(err, ErrInvalidType):
		return response.Error(c, fiber.StatusBadRequest, "Invalid file type")
	default:
		logger.WithRayID(h.service.logger, c).Error("Upload failed", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, "Failed to save")
	}
}

// HandleAsset streams a stored asset.
// @Summary Get Asset
// @Tags upload
// @Param path path string true "Asset path (e.g. 'member/ann.jpg')"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]any
// @Router /asset/{path} [get]
func (h *Handler) HandleAsset(c *fiber.Ctx) error {
	key := c.Params("*")

	rc, err := h.service.Open(c.Context(), key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return response.Error(c, fiber.StatusNotFound, "Asset not found")
		}
		logger.WithRayID(h.service.logger, c).Error("Asset read failed", zap.String("key", key), zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, "Failed to load")
	}

	c.Set(fiber.HeaderContentType, ContentType(key))
	return c.SendStream(rc)
}
