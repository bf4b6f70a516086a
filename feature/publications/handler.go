package publications

import (
	"errors"

	"lab-admin/core/docstore"
	"lab-admin/core/logger"
	"lab-admin/core/reconcile"
	"lab-admin/core/request"
	"lab-admin/core/response"
	"lab-admin/feature/publications/dblp"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for publications.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the publication routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/publications")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Post("/reorder", h.HandleReorder)
	group.Post("/crawl", h.HandleCrawl)
	group.Post("/sort", h.HandleSort)
	group.Put("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns the whole publications document.
// @Summary List Publications
// @Tags publications
// @Produce json
// @Success 200 {object} models.Document
// @Failure 500 {object} map[string]any
// @Router /api/publications [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	doc, err := h.service.Document(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to load")
	}
	return c.JSON(doc)
}

// HandleCreate adds an operator-entered publication.
// @Summary Create Publication
// @Tags publications
// @Accept json
// @Produce json
// @Param body body PublicationInput true "Publication"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/publications [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in PublicationInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}

	pub, err := h.service.Create(c.Context(), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"publication": pub})
}

// HandleUpdate replaces a publication.
// @Summary Update Publication
// @Tags publications
// @Accept json
// @Produce json
// @Param id path string true "Publication ID (e.g. 'j900')"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/publications/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var in PublicationInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}

	pub, err := h.service.Update(c.Context(), c.Params("id"), in.ToModel())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"publication": pub})
}

// HandleDelete removes a publication.
// @Summary Delete Publication
// @Tags publications
// @Param id path string true "Publication ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/publications/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, nil)
}

// HandleReorder applies an operator-chosen order.
// @Summary Reorder Publications
// @Tags publications
// @Accept json
// @Param body body ReorderInput true "Ordered ids"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/publications/reorder [post]
func (h *Handler) HandleReorder(c *fiber.Ctx) error {
	var in ReorderInput
	if err := request.Bind(c, &in); err != nil {
		return response.ValidationError(c, err)
	}
	if err := h.service.Reorder(c.Context(), in.Order); err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, nil)
}

// HandleCrawl scrapes DBLP and merges the result.
// @Summary Crawl DBLP
// @Tags publications
// @Param dry_run query bool false "Compute counters without saving"
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/publications/crawl [post]
func (h *Handler) HandleCrawl(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	opts := reconcile.Options{DryRun: c.QueryBool("dry_run", false)}

	result, err := h.service.Crawl(c.Context(), opts)
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}

	l.Info("Crawl finished", zap.Int("added", result.Added), zap.Bool("dry_run", result.DryRun))
	return response.OK(c, fiber.Map{
		"total":   result.Total,
		"added":   result.Added,
		"updated": result.Updated,
		"skipped": result.Skipped,
		"dry_run": result.DryRun,
	})
}

// HandleSort applies the manual-first, newest-first order.
// @Summary Sort Publications
// @Tags publications
// @Success 200 {object} map[string]any
// @Router /api/publications/sort [post]
func (h *Handler) HandleSort(c *fiber.Ctx) error {
	n, err := h.service.Sort(c.Context())
	if err != nil {
		return h.fail(c, err, "Failed to save")
	}
	return response.OK(c, fiber.Map{"count": n})
}

// fail maps service errors to responses. storeMsg is used for store failures.
func (h *Handler) fail(c *fiber.Ctx, err error, storeMsg string) error {
	l := logger.WithRayID(h.service.logger, c)

	switch {
	case errors.Is(err, ErrNotFound):
		return response.Error(c, fiber.StatusNotFound, "Publication not found")
	case errors.Is(err, ErrEmptyOrder):
		return response.Error(c, fiber.StatusBadRequest, "No order provided")
	case errors.Is(err, docstore.ErrConflict):
		l.Warn("Publications document changed concurrently", zap.Error(err))
		return response.Error(c, fiber.StatusConflict, "Document was modified concurrently, retry")
	case errors.Is(err, dblp.ErrNotConfigured):
		return response.Error(c, fiber.StatusServiceUnavailable, err.Error())
	case errors.Is(err, dblp.ErrUpstream):
		l.Error("DBLP listing fetch failed", zap.Error(err))
		return response.Error(c, fiber.StatusBadGateway, err.Error())
	default:
		l.Error("Publications store failure", zap.Error(err))
		return response.Error(c, fiber.StatusInternalServerError, storeMsg)
	}
}
