package records

import (
	"context"
	"time"

	"record-importer/core/logger"
	"record-importer/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for one entity kind.
type Handler[E reconcile.Entity] struct {
	service Service[E]
	logger  *zap.Logger
	route   string
	timeout time.Duration
}

// NewHandler creates a new HTTP handler mounted at route (e.g. "/users").
func NewHandler[E reconcile.Entity](service Service[E], logger *zap.Logger, route string, timeout time.Duration) *Handler[E] {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Handler[E]{service: service, logger: logger, route: route, timeout: timeout}
}

// RegisterRoutes registers the entity routes.
func (h *Handler[E]) RegisterRoutes(app fiber.Router) {
	group := app.Group(h.route)
	group.Post("/import", h.HandleImport)
	group.Get("/", h.HandleList)
	group.Delete("/:id", h.HandleRemove)
}

// HandleImport fetches the remote collection and upserts it.
// @Summary Import entities
// @Description Fetches the full remote collection and upserts every valid record. Malformed or unwritable records are reported in failures.
// @Tags records
// @Security ApiKeyAuth
// @Produce json
// @Param entity path string true "Entity route (users or posts)"
// @Success 200 {object} records.ImportResponse "Import result"
// @Failure 502 {object} map[string]string "Remote source returned nothing"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /{entity}/import [post]
func (h *Handler[E]) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	result, err := h.service.Import(ctx)
	if err != nil {
		l.Error("Import failed", zap.String("entity", h.service.Name()), zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(NewImportResponse(result))
}

// HandleList returns every stored entity.
// @Summary List entities
// @Description Lists every stored entity in table order. Store errors yield an empty list.
// @Tags records
// @Security ApiKeyAuth
// @Produce json
// @Param entity path string true "Entity route (users or posts)"
// @Param limit query int false "Maximum number of entities to return"
// @Success 200 {array} object "Entities"
// @Router /{entity} [get]
func (h *Handler[E]) HandleList(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	items := h.service.List(ctx)
	if limit := c.QueryInt("limit", 0); limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return c.JSON(items)
}

// HandleRemove deletes one entity by id.
// @Summary Delete entity
// @Description Deletes the entity with the given id. deleted is false when no row matched.
// @Tags records
// @Security ApiKeyAuth
// @Produce json
// @Param entity path string true "Entity route (users or posts)"
// @Param id path int true "Entity id"
// @Success 200 {object} records.RemoveResponse "Deletion result"
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /{entity}/{id} [delete]
func (h *Handler[E]) HandleRemove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	id, err := reconcile.ParseID(c.Params("id"))
	if err != nil {
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	deleted, err := h.service.Remove(ctx, id)
	if err != nil {
		l.Error("Remove failed", zap.String("entity", h.service.Name()), zap.Int("id", id), zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(RemoveResponse{ID: id, Deleted: deleted})
}
