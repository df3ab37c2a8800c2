package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"inventory-sync/core/config"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/utils"
)

// StatusSold is the status label excluding an item from stock in generic
// feeds.
const StatusSold = "Sold"

// GenericAdapter handles feeds with arbitrary per-item grade labels.
//
// Policy: prices arrive dollar-denominated and are used verbatim, every
// non-Sold item counts toward stock, discount is always zero, updates
// replace the persisted options list wholesale, and unknown products and
// conditions are created in the catalog on first sighting.
type GenericAdapter struct {
	vendor config.Vendor
	client *Client
	log    *zap.Logger
}

// NewGeneric creates a generic adapter for one configured vendor.
func NewGeneric(vendor config.Vendor, log *zap.Logger) *GenericAdapter {
	client := NewClient(
		vendor.BaseURL,
		Credentials{AppID: vendor.AppID, AppSecret: vendor.AppSecret},
		time.Duration(vendor.TimeoutSeconds)*time.Second,
	)
	return &GenericAdapter{vendor: vendor, client: client, log: log}
}

// Name implements reconcile.Adapter.
func (a *GenericAdapter) Name() string { return config.AdapterGeneric }

// VendorID implements reconcile.Adapter.
func (a *GenericAdapter) VendorID() string { return a.vendor.ID }

// Fetch pulls the feed and maps each item from the generic field layout.
func (a *GenericAdapter) Fetch(ctx context.Context) ([]reconcile.RawItem, error) {
	raw, err := a.client.FetchItems(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]reconcile.RawItem, 0, len(raw))
	for _, fields := range raw {
		items = append(items, reconcile.RawItem{
			Manufacturer: utils.ToString(fields["manufacturer"]),
			Model:        utils.ToString(fields["model"]),
			Color:        utils.ToString(fields["color"]),
			Capacity:     utils.ToString(fields["capacity"]),
			Variant:      utils.ToString(fields["variant"]),
			Grade:        utils.ToString(fields["grade"]),
			Serial:       utils.ToString(fields["serial"]),
			SKU:          utils.ToString(fields["sku"]),
			Status:       utils.ToString(fields["status"]),
			PricePaid:    utils.ToFloat(fields["price_paid"]),
		})
	}
	return items, nil
}

// Countable counts every item the vendor has not marked Sold.
func (a *GenericAdapter) Countable(item reconcile.RawItem) bool {
	return item.Status != StatusSold
}

// UnitPrice uses the dollar-denominated feed price verbatim.
func (a *GenericAdapter) UnitPrice(pricePaid float64) float64 { return pricePaid }

// Discount is always zero for generic feeds.
func (a *GenericAdapter) Discount(price float64) float64 { return 0 }

// Merge implements reconcile.Adapter.
func (a *GenericAdapter) Merge() reconcile.MergeStrategy { return reconcile.MergeReplace }

// AllowCreate implements reconcile.Adapter.
func (a *GenericAdapter) AllowCreate() bool { return true }

// FixedCondition implements reconcile.Adapter; generic feeds carry
// per-item grade labels.
func (a *GenericAdapter) FixedCondition() string { return "" }
