package integrity

import (
	"errors"

	"record-importer/core/database"
	"record-importer/core/logger"
	"record-importer/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/snapshots", h.HandleSnapshotCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema check and, when archiving is enabled, the snapshot check.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(ctx); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if snaps, err := h.service.CheckSnapshots(ctx); errors.Is(err, ErrArchivingDisabled) {
		report["snapshots"] = map[string]interface{}{"status": "disabled"}
	} else if err != nil {
		report["snapshots"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["snapshots"] = snaps
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the entity tables.
// @Summary Check Schema
// @Description Checks that the user and post tables have every mapped column.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema(c.UserContext())
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, database.ErrStoreUnavailable) {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched {
		l.Warn("Schema mismatches found", zap.Any("tables", report.Tables))
	}
	return c.JSON(report)
}

// HandleSnapshotCheck checks and optionally fixes the snapshot bucket.
// @Summary Check Snapshots
// @Description Checks the snapshot bucket and reports the newest snapshot per resource. Optionally creates the bucket.
// @Tags integrity
// @Security ApiKeyAuth
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.SnapshotReport "Snapshot Report"
// @Failure 404 {object} map[string]string "Archiving disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshots [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"
	ctx := c.UserContext()

	report, err := h.service.CheckSnapshots(ctx)
	if errors.Is(err, ErrArchivingDisabled) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Snapshot check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Exists && fix {
		l.Info("Attempting to create snapshot bucket")
		if err := h.service.FixSnapshots(ctx); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "fixed", "bucket": report.Bucket})
	}

	return c.JSON(report)
}
