package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-sync/core/logger"
)

// Handler handles HTTP requests for inventory reconciliation.
type Handler struct {
	service *Service
	log     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Post("/sync", h.HandleSync)
	group.Post("/sync/:adapter", h.HandleSync)
	group.Get("/listings/:vendor", h.HandleListings)
}

// HandleSync triggers a reconciliation pass.
// @Summary Run inventory reconciliation
// @Description Runs a full reconciliation pass for every configured vendor, or for one adapter class when scoped. Always returns per-vendor summaries; vendor-level failures appear in their summary slot.
// @Tags inventory
// @Accept json
// @Produce json
// @Param adapter path string false "Adapter scope (generic or wholecell)"
// @Success 200 {array} reconcile.VendorSummary "Per-vendor summaries"
// @Failure 400 {object} map[string]string "Unknown adapter scope"
// @Failure 500 {object} map[string]string "Run could not start"
// @Router /inventory/sync/{adapter} [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	scope := c.Params("adapter")
	l := logger.WithRayID(h.log, c)

	summaries, err := h.service.Sync(c.Context(), scope)
	if err != nil {
		l.Error("Reconciliation run failed to start", zap.Error(err))
		status := fiber.StatusInternalServerError
		if scope != "" {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(summaries)
}

// HandleListings returns a vendor's persisted records.
// @Summary List vendor records
// @Description Returns every persisted (product, condition) record for one vendor, including zeroed ones.
// @Tags inventory
// @Accept json
// @Produce json
// @Param vendor path string true "Vendor ID"
// @Success 200 {array} catalog.Listing "Vendor listings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/listings/{vendor} [get]
func (h *Handler) HandleListings(c *fiber.Ctx) error {
	vendorID := c.Params("vendor")
	l := logger.WithRayID(h.log, c)

	listings, err := h.service.Listings(c.Context(), vendorID)
	if err != nil {
		l.Error("Listing lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(listings)
}
