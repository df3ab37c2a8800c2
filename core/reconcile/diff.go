package reconcile

import "inventory-sync/core/catalog"

// OpType classifies a planned store operation.
type OpType string

const (
	// OpCreate inserts a listing for a newly sighted (product, condition).
	OpCreate OpType = "create"
	// OpUpdate merges freshly aggregated options into an existing listing.
	OpUpdate OpType = "update"
	// OpZero marks an existing listing out of stock without deleting it.
	OpZero OpType = "zero"
)

// Operation is one planned mutation. Operations target disjoint listings
// by construction and carry no ordering between each other.
type Operation struct {
	Type    OpType
	Listing *catalog.Listing
}

// Diff compares the freshly computed (product, condition) -> options map
// against the vendor's persisted listings and plans the minimal operation
// set: creates for new combinations, merge-updates for combinations
// present on both sides, and zero-outs for persisted combinations absent
// from the feed.
func Diff(vendorID string, computed map[RecordKey][]catalog.Option, keys []RecordKey, persisted []catalog.Listing, adapter Adapter) []Operation {
	operations := make([]Operation, 0)

	existing := make(map[RecordKey]*catalog.Listing, len(persisted))
	for i := range persisted {
		listing := &persisted[i]
		existing[RecordKey{ProductID: listing.ProductID, ConditionID: listing.ConditionID}] = listing
	}

	// Creates and updates, in computed order.
	for _, key := range keys {
		options := computed[key]

		current, ok := existing[key]
		if !ok {
			operations = append(operations, Operation{
				Type: OpCreate,
				Listing: &catalog.Listing{
					VendorID:    vendorID,
					ProductID:   key.ProductID,
					ConditionID: key.ConditionID,
					Options:     options,
				},
			})
			continue
		}

		merged := *current
		merged.Options = mergeOptions(current.Options, options, adapter)
		operations = append(operations, Operation{Type: OpUpdate, Listing: &merged})
	}

	// Zero-outs for persisted combinations the feed no longer reports.
	for i := range persisted {
		listing := &persisted[i]
		key := RecordKey{ProductID: listing.ProductID, ConditionID: listing.ConditionID}
		if _, ok := computed[key]; ok {
			continue
		}

		zeroed := *listing
		zeroed.Options = make([]catalog.Option, len(listing.Options))
		for j, option := range listing.Options {
			option.Stock = 0
			option.UnitIDs = []string{}
			zeroed.Options[j] = option
		}
		operations = append(operations, Operation{Type: OpZero, Listing: &zeroed})
	}

	return operations
}

// mergeOptions combines persisted options with freshly aggregated ones
// according to the adapter's merge strategy.
//
// MergeReplace swaps the list wholesale. MergeAdditive folds per option
// key: stock sums (cumulative: re-reported units are counted again, and
// unit lists concatenate without deduplication; this mirrors the feed
// contract where a pass reports newly observed units), price takes the
// minimum of both sides, and the discount is recomputed from the merged
// price by the adapter's policy.
func mergeOptions(current, incoming []catalog.Option, adapter Adapter) []catalog.Option {
	if adapter.Merge() == MergeReplace {
		return incoming
	}
	return foldOptions(current, incoming, adapter)
}

// foldOptions additively combines two option sets per option key: stock
// sums, unit lists concatenate, price takes the minimum, discount is
// recomputed from the folded price. Used for the additive merge strategy
// and for collapsing same-pass groups that resolve to one record,
// regardless of the adapter's update strategy.
func foldOptions(current, incoming []catalog.Option, adapter Adapter) []catalog.Option {
	merged := make([]catalog.Option, len(current))
	index := make(map[string]int, len(current))
	for i, option := range current {
		// Copy the unit list so the persisted slice is never aliased.
		option.UnitIDs = append([]string{}, option.UnitIDs...)
		merged[i] = option
		index[option.Key()] = i
	}

	for _, option := range incoming {
		at, ok := index[option.Key()]
		if !ok {
			merged = append(merged, option)
			index[option.Key()] = len(merged) - 1
			continue
		}

		merged[at].Stock += option.Stock
		merged[at].UnitIDs = append(merged[at].UnitIDs, option.UnitIDs...)
		if option.Price < merged[at].Price {
			merged[at].Price = option.Price
		}
		merged[at].Discount = adapter.Discount(merged[at].Price)
	}

	return merged
}
