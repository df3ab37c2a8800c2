package feed

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"inventory-sync/core/config"
	"inventory-sync/core/reconcile"
	"inventory-sync/core/utils"
)

// StatusAvailable is the only status contributing to stock in wholecell
// feeds.
const StatusAvailable = "Available"

// WholecellAdapter handles restricted wholesale feeds.
//
// Policy: the condition is pinned per vendor, prices arrive
// cents-denominated (converted to rounded dollars), only Available items
// count toward stock, discount is pinned equal to price, updates merge
// additively into the persisted options, and items whose
// manufacturer/model match no existing catalog entry are skipped and
// counted, never created.
type WholecellAdapter struct {
	vendor config.Vendor
	client *Client
	log    *zap.Logger
}

// NewWholecell creates a wholecell adapter for one configured vendor.
func NewWholecell(vendor config.Vendor, log *zap.Logger) *WholecellAdapter {
	client := NewClient(
		vendor.BaseURL,
		Credentials{AppID: vendor.AppID, AppSecret: vendor.AppSecret},
		time.Duration(vendor.TimeoutSeconds)*time.Second,
	)
	return &WholecellAdapter{vendor: vendor, client: client, log: log}
}

// Name implements reconcile.Adapter.
func (a *WholecellAdapter) Name() string { return config.AdapterWholecell }

// VendorID implements reconcile.Adapter.
func (a *WholecellAdapter) VendorID() string { return a.vendor.ID }

// Fetch pulls the feed and maps each item from the wholecell field layout
// (serial_number/esn/hex_id instead of the generic serial field, no
// per-item grade).
func (a *WholecellAdapter) Fetch(ctx context.Context) ([]reconcile.RawItem, error) {
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
			Serial:       utils.ToString(fields["serial_number"]),
			ESN:          utils.ToString(fields["esn"]),
			HexID:        utils.ToString(fields["hex_id"]),
			SKU:          utils.ToString(fields["sku"]),
			Status:       utils.ToString(fields["status"]),
			PricePaid:    utils.ToFloat(fields["price_paid"]),
		})
	}
	return items, nil
}

// Countable counts only items the vendor reports as Available.
func (a *WholecellAdapter) Countable(item reconcile.RawItem) bool {
	return item.Status == StatusAvailable
}

// UnitPrice converts the cents-denominated feed price to rounded dollars.
func (a *WholecellAdapter) UnitPrice(pricePaid float64) float64 {
	return math.Round(pricePaid / 100)
}

// Discount is pinned equal to the unit price for wholecell feeds.
func (a *WholecellAdapter) Discount(price float64) float64 { return price }

// Merge implements reconcile.Adapter.
func (a *WholecellAdapter) Merge() reconcile.MergeStrategy { return reconcile.MergeAdditive }

// AllowCreate implements reconcile.Adapter; wholecell items must match an
// existing catalog entry.
func (a *WholecellAdapter) AllowCreate() bool { return false }

// FixedCondition returns the vendor's pinned grade label.
func (a *WholecellAdapter) FixedCondition() string { return a.vendor.Condition }
