package catalog

import "time"

// Product is a canonical catalog entry, de-duplicated across vendors.
// Identity is owned by the catalog store; the reconciliation engine only
// creates products for adapters that permit creation.
type Product struct {
	// ID is the catalog-assigned identity.
	ID uint `gorm:"primaryKey" json:"id"`

	// Manufacturer is the brand name (e.g. "Apple").
	Manufacturer string `gorm:"size:120" json:"manufacturer"`

	// Model is the model label within the manufacturer (e.g. "iPhone 13").
	Model string `gorm:"size:120" json:"model"`

	// Category groups products for display. Defaults to the manufacturer
	// when a product is auto-created from a feed.
	Category string `gorm:"size:120" json:"category"`

	// Name is the display name used for matching ("{manufacturer} {model}").
	Name string `gorm:"size:191;uniqueIndex" json:"name"`

	// StorageSpec is an optional comma-separated list of variant tokens,
	// e.g. "64GB 4GB RAM, 128GB 4GB RAM, 256GB 8GB RAM". When present it
	// drives variant descriptor derivation during aggregation.
	StorageSpec string `gorm:"size:255" json:"storage_spec"`

	// ImagesByColor maps a color label to an image object key.
	ImagesByColor map[string]string `gorm:"serializer:json" json:"images_by_color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Condition is a normalized grade label for a physical unit
// (e.g. "A-Stock", "Refurbished"). Conditions persist independently of
// any single vendor.
type Condition struct {
	// ID is the catalog-assigned identity.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the grade label, unique case-insensitively.
	Name string `gorm:"size:120;uniqueIndex" json:"name"`
}

// Option is a per-(color, variant) stock bucket inside a listing.
// Its identity key is (Color, Variant) within the parent listing and is
// stable across reconciliation runs, so repeated syncs merge instead of
// duplicating.
type Option struct {
	// ID is a generated identity assigned when the option is first seen.
	ID string `json:"id"`

	// Color is the reported color label.
	Color string `json:"color"`

	// Variant is the human-readable variant descriptor
	// (e.g. "128GB 4GB RAM").
	Variant string `json:"variant"`

	// Stock is the number of units currently contributing to this option.
	Stock int `json:"stock"`

	// Price is the unit price in dollars.
	Price float64 `json:"price"`

	// Discount is the discount amount; policy differs per adapter.
	Discount float64 `json:"discount"`

	// UnitIDs lists the unit identifiers (serial/ESN/SKU) currently
	// contributing to Stock, in observation order.
	UnitIDs []string `json:"unit_ids"`
}

// Key returns the merge identity of the option within its listing.
func (o Option) Key() string {
	return o.Color + "|" + o.Variant
}

// Listing is the persisted unit of reconciliation: one vendor's stock for
// one (product, condition) pair. At most one listing exists per
// (VendorID, ProductID, ConditionID) tuple.
//
// A listing with every option at zero stock is a valid state ("known but
// currently out of stock"). Listings are never deleted, only zeroed, so
// anything referencing them stays valid.
type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	VendorID    string `gorm:"size:64;uniqueIndex:idx_vendor_product_condition,priority:1" json:"vendor_id"`
	ProductID   uint   `gorm:"uniqueIndex:idx_vendor_product_condition,priority:2" json:"product_id"`
	ConditionID uint   `gorm:"uniqueIndex:idx_vendor_product_condition,priority:3" json:"condition_id"`

	// Options holds the per-(color, variant) stock buckets, stored as a
	// JSON document column.
	Options []Option `gorm:"serializer:json" json:"options"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
