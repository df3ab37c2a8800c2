package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"inventory-sync/core/catalog"
	"inventory-sync/core/config"
	"inventory-sync/core/reconcile"
	"inventory-sync/feature/inventory/feed"
)

// Service runs reconciliation passes and serves listing reads.
type Service struct {
	orchestrator *reconcile.Orchestrator
	store        *catalog.Store
	vendors      []config.Vendor
	log          *zap.Logger
}

// NewService creates the inventory service. The vendor list is fixed at
// construction time; reconfiguration means rebuilding the service.
func NewService(orchestrator *reconcile.Orchestrator, store *catalog.Store, vendors []config.Vendor, log *zap.Logger) *Service {
	return &Service{
		orchestrator: orchestrator,
		store:        store,
		vendors:      vendors,
		log:          log,
	}
}

// Sync runs one reconciliation pass for every configured vendor matching
// the scope ("" for all, or an adapter class name) and returns the
// per-vendor summaries. An error is returned only when the run cannot
// start at all; per-vendor failures land in their summary slots.
func (s *Service) Sync(ctx context.Context, scope string) ([]reconcile.VendorSummary, error) {
	adapters, err := s.adapters(scope)
	if err != nil {
		return nil, err
	}
	if len(adapters) == 0 {
		return []reconcile.VendorSummary{}, nil
	}

	s.log.Info("Starting reconciliation run",
		zap.String("scope", scopeLabel(scope)),
		zap.Int("vendors", len(adapters)),
	)
	return s.orchestrator.RunAll(ctx, adapters), nil
}

// Listings returns the persisted records for one vendor.
func (s *Service) Listings(ctx context.Context, vendorID string) ([]catalog.Listing, error) {
	return s.store.ListByVendor(ctx, vendorID)
}

// adapters builds one feed adapter per configured vendor in the scope.
func (s *Service) adapters(scope string) ([]reconcile.Adapter, error) {
	switch scope {
	case "", config.AdapterGeneric, config.AdapterWholecell:
	default:
		return nil, fmt.Errorf("unknown sync scope %q", scope)
	}

	adapters := make([]reconcile.Adapter, 0, len(s.vendors))
	for _, vendor := range s.vendors {
		if scope != "" && vendor.Adapter != scope {
			continue
		}

		log := s.log.With(zap.String("vendor", vendor.ID))
		switch vendor.Adapter {
		case config.AdapterWholecell:
			adapters = append(adapters, feed.NewWholecell(vendor, log))
		default:
			adapters = append(adapters, feed.NewGeneric(vendor, log))
		}
	}
	return adapters, nil
}

func scopeLabel(scope string) string {
	if scope == "" {
		return "all"
	}
	return scope
}
