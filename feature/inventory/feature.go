package inventory

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"inventory-sync/core/catalog"
	"inventory-sync/core/config"
	"inventory-sync/core/reconcile"
)

// Feature bundles the inventory service and handler for the loader.
type Feature struct {
	handler *Handler
}

// NewFeature wires the inventory feature from its dependencies.
func NewFeature(orchestrator *reconcile.Orchestrator, store *catalog.Store, vendors []config.Vendor, log *zap.Logger) *Feature {
	service := NewService(orchestrator, store, vendors, log)
	return &Feature{handler: NewHandler(service, log)}
}

// Name implements loader.Feature.
func (f *Feature) Name() string { return "inventory" }

// Register implements loader.Feature.
func (f *Feature) Register(router fiber.Router) error {
	f.handler.RegisterRoutes(router)
	return nil
}
