package reconcile

import (
	"context"

	"inventory-sync/core/catalog"
)

// RawItem is one unit of inventory as reported by a vendor feed, after the
// adapter's field mapping. It exists only for the duration of one
// reconciliation pass and is never persisted.
type RawItem struct {
	// Manufacturer and Model reference the catalog product, as the
	// vendor spells them.
	Manufacturer string
	Model        string

	// Color is the reported color label.
	Color string

	// Capacity is the reported storage capacity without unit (e.g. "128").
	Capacity string

	// Variant is an optional vendor-reported variant label, used when no
	// capacity-based descriptor can be derived.
	Variant string

	// Grade is the vendor's condition label. Ignored by adapters that pin
	// a fixed condition.
	Grade string

	// Unit identifiers, in descending preference order. The first
	// non-empty one becomes the unit's identity in the option record.
	Serial string
	ESN    string
	HexID  string
	SKU    string

	// Status is the vendor-reported availability ("Available", "Sold", ...).
	Status string

	// PricePaid is the reported price in the vendor's own unit (cents or
	// dollars); the adapter's price policy converts it.
	PricePaid float64
}

// MergeStrategy selects how freshly aggregated options combine with a
// previously persisted listing's options on update.
type MergeStrategy int

const (
	// MergeReplace swaps the persisted options list for the freshly
	// aggregated one.
	MergeReplace MergeStrategy = iota

	// MergeAdditive folds new options into the persisted ones per option
	// key: stock sums, unit lists concatenate, price takes the minimum.
	// Stock is cumulative: a pass reports newly observed units on top of
	// previously tracked ones.
	MergeAdditive
)

// Adapter bundles one vendor's feed access with its reconciliation policy:
// status filtering, price unit conversion, discount rule, merge strategy,
// and whether unknown products may be created. The pipeline is otherwise
// identical for every adapter.
type Adapter interface {
	// Name identifies the adapter class (e.g. "generic", "wholecell").
	Name() string

	// VendorID identifies the vendor whose records this adapter owns.
	VendorID() string

	// Fetch retrieves and maps the vendor's current item list. It must
	// not retry internally; retry policy belongs to the orchestrator.
	Fetch(ctx context.Context) ([]RawItem, error)

	// Countable reports whether an item contributes to stock.
	Countable(item RawItem) bool

	// UnitPrice converts a vendor-reported price into dollars.
	UnitPrice(pricePaid float64) float64

	// Discount computes the discount for a given unit price.
	Discount(price float64) float64

	// Merge returns the update-merge strategy for this adapter.
	Merge() MergeStrategy

	// AllowCreate reports whether unmatched products and conditions may
	// be created in the catalog. When false, unmatched groups are
	// skipped and counted.
	AllowCreate() bool

	// FixedCondition returns the single condition label pinned for this
	// vendor, or "" when conditions come from per-item grade labels.
	FixedCondition() string
}

// Catalog resolves vendor-reported labels into canonical catalog entries.
// Implemented by catalog.Resolver.
type Catalog interface {
	Resolve(ctx context.Context, manufacturer, model string, allowCreate bool) (*catalog.Product, error)
	Condition(ctx context.Context, name string, allowCreate bool) (*catalog.Condition, error)
}

// ListingStore persists vendor listings. There is deliberately no delete
// operation: listings are only created, updated, or zeroed.
// Implemented by catalog.Store.
type ListingStore interface {
	ListByVendor(ctx context.Context, vendorID string) ([]catalog.Listing, error)
	Create(ctx context.Context, listing *catalog.Listing) error
	Update(ctx context.Context, listing *catalog.Listing) error
}

// RecordKey identifies one (product, condition) pair within a vendor's
// record set.
type RecordKey struct {
	ProductID   uint
	ConditionID uint
}

// VendorSummary is the per-vendor outcome of a reconciliation pass. On
// vendor-level failure only VendorID and Error are populated.
type VendorSummary struct {
	VendorID         string `json:"vendorId"`
	TotalFetched     int    `json:"totalFetched"`
	GroupsProcessed  int    `json:"groupsProcessed"`
	SkippedProducts  int    `json:"skippedProducts"`
	NewRecords       int    `json:"newRecords"`
	UpdatedRecords   int    `json:"updatedRecords"`
	MarkedOutOfStock int    `json:"markedOutOfStock"`
	TotalOperations  int    `json:"totalOperations"`
	Error            string `json:"error,omitempty"`
}
