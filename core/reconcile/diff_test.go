package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory-sync/core/catalog"
)

func TestDiff_Create(t *testing.T) {
	key := RecordKey{ProductID: 1, ConditionID: 2}
	computed := map[RecordKey][]catalog.Option{
		key: {{ID: "o1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 2, Price: 100, UnitIDs: []string{"a", "b"}}},
	}

	operations := Diff("vendor-a", computed, []RecordKey{key}, nil, &stubAdapter{merge: MergeAdditive})

	assert.Len(t, operations, 1)
	assert.Equal(t, OpCreate, operations[0].Type)
	assert.Equal(t, "vendor-a", operations[0].Listing.VendorID)
	assert.Equal(t, uint(1), operations[0].Listing.ProductID)
	assert.Equal(t, uint(2), operations[0].Listing.ConditionID)
	assert.Equal(t, 2, operations[0].Listing.Options[0].Stock)
}

func TestDiff_UpdateAdditiveMerge(t *testing.T) {
	key := RecordKey{ProductID: 1, ConditionID: 2}
	persisted := []catalog.Listing{{
		ID:          7,
		VendorID:    "vendor-a",
		ProductID:   1,
		ConditionID: 2,
		Options: []catalog.Option{
			{ID: "o1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 3, Price: 120, Discount: 120, UnitIDs: []string{"a", "b", "c"}},
			{ID: "o2", Color: "White", Variant: "64GB 4GB RAM", Stock: 1, Price: 110, Discount: 110, UnitIDs: []string{"w"}},
		},
	}}
	computed := map[RecordKey][]catalog.Option{
		key: {
			{ID: "n1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 2, Price: 100, Discount: 100, UnitIDs: []string{"d", "a"}},
			{ID: "n2", Color: "Red", Variant: "64GB 4GB RAM", Stock: 1, Price: 90, Discount: 90, UnitIDs: []string{"r"}},
		},
	}

	operations := Diff("vendor-a", computed, []RecordKey{key}, persisted, &stubAdapter{merge: MergeAdditive})

	assert.Len(t, operations, 1)
	assert.Equal(t, OpUpdate, operations[0].Type)
	merged := operations[0].Listing
	assert.Equal(t, uint(7), merged.ID)
	assert.Len(t, merged.Options, 3)

	// Matched option key: stock sums, unit lists concatenate without
	// dedup ("a" appears twice), price takes the minimum, discount is
	// re-pinned to the merged price.
	black := merged.Options[0]
	assert.Equal(t, "o1", black.ID)
	assert.Equal(t, 5, black.Stock)
	assert.Equal(t, []string{"a", "b", "c", "d", "a"}, black.UnitIDs)
	assert.Equal(t, float64(100), black.Price)
	assert.Equal(t, float64(100), black.Discount)

	// Old-only option survives untouched.
	white := merged.Options[1]
	assert.Equal(t, "o2", white.ID)
	assert.Equal(t, 1, white.Stock)

	// New-only option is appended.
	red := merged.Options[2]
	assert.Equal(t, "n2", red.ID)
	assert.Equal(t, 1, red.Stock)

	// The persisted snapshot is never mutated in place.
	assert.Equal(t, 3, persisted[0].Options[0].Stock)
	assert.Equal(t, []string{"a", "b", "c"}, persisted[0].Options[0].UnitIDs)
}

func TestDiff_UpdateReplaceMerge(t *testing.T) {
	key := RecordKey{ProductID: 1, ConditionID: 2}
	persisted := []catalog.Listing{{
		ID:          7,
		VendorID:    "vendor-a",
		ProductID:   1,
		ConditionID: 2,
		Options: []catalog.Option{
			{ID: "o1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 3, UnitIDs: []string{"a", "b", "c"}},
		},
	}}
	computed := map[RecordKey][]catalog.Option{
		key: {{ID: "n1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 1, UnitIDs: []string{"d"}}},
	}

	operations := Diff("vendor-a", computed, []RecordKey{key}, persisted, &stubAdapter{merge: MergeReplace})

	assert.Len(t, operations, 1)
	assert.Equal(t, OpUpdate, operations[0].Type)
	assert.Len(t, operations[0].Listing.Options, 1)
	assert.Equal(t, "n1", operations[0].Listing.Options[0].ID)
	assert.Equal(t, 1, operations[0].Listing.Options[0].Stock)
}

func TestDiff_ZeroOut(t *testing.T) {
	persisted := []catalog.Listing{{
		ID:          7,
		VendorID:    "vendor-a",
		ProductID:   1,
		ConditionID: 2,
		Options: []catalog.Option{
			{ID: "o1", Color: "Black", Variant: "64GB 4GB RAM", Stock: 3, Price: 100, Discount: 100, UnitIDs: []string{"a", "b", "c"}},
			{ID: "o2", Color: "White", Variant: "64GB 4GB RAM", Stock: 1, Price: 110, Discount: 110, UnitIDs: []string{"w"}},
		},
	}}

	operations := Diff("vendor-a", map[RecordKey][]catalog.Option{}, nil, persisted, &stubAdapter{merge: MergeAdditive})

	assert.Len(t, operations, 1)
	assert.Equal(t, OpZero, operations[0].Type)
	zeroed := operations[0].Listing

	// Identity and option set stay intact; only stock and unit lists
	// reset. This is a soft tombstone, never a delete.
	assert.Equal(t, uint(7), zeroed.ID)
	assert.Len(t, zeroed.Options, 2)
	for _, option := range zeroed.Options {
		assert.Equal(t, 0, option.Stock)
		assert.Empty(t, option.UnitIDs)
	}
	assert.Equal(t, "o1", zeroed.Options[0].ID)
	assert.Equal(t, float64(100), zeroed.Options[0].Price)
}

func TestDiff_DisjointOperationClasses(t *testing.T) {
	keep := RecordKey{ProductID: 1, ConditionID: 1}
	fresh := RecordKey{ProductID: 2, ConditionID: 1}
	persisted := []catalog.Listing{
		{ID: 1, VendorID: "v", ProductID: 1, ConditionID: 1, Options: []catalog.Option{{ID: "o1", Color: "Black", Variant: "Standard", Stock: 1, UnitIDs: []string{"a"}}}},
		{ID: 2, VendorID: "v", ProductID: 3, ConditionID: 1, Options: []catalog.Option{{ID: "o2", Color: "Black", Variant: "Standard", Stock: 2, UnitIDs: []string{"b", "c"}}}},
	}
	computed := map[RecordKey][]catalog.Option{
		keep:  {{ID: "n1", Color: "Black", Variant: "Standard", Stock: 1, UnitIDs: []string{"d"}}},
		fresh: {{ID: "n2", Color: "Black", Variant: "Standard", Stock: 1, UnitIDs: []string{"e"}}},
	}

	operations := Diff("v", computed, []RecordKey{keep, fresh}, persisted, &stubAdapter{merge: MergeAdditive})

	types := map[OpType]int{}
	for _, operation := range operations {
		types[operation.Type]++
	}
	assert.Equal(t, map[OpType]int{OpCreate: 1, OpUpdate: 1, OpZero: 1}, types)
}
