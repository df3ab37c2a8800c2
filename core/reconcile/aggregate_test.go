package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventory-sync/core/catalog"
)

func TestAggregateOptions_WholesaleScenario(t *testing.T) {
	// Two available units of the same product/color/capacity must fold
	// into a single option with stock 2, a cents->dollars price, and the
	// discount pinned to the price.
	group := &Group{
		Manufacturer: "Acme",
		Model:        "X1",
		Items: []RawItem{
			{Manufacturer: "Acme", Model: "X1", Color: "Black", Capacity: "128", Status: "Available", PricePaid: 10000, ESN: "esn-1"},
			{Manufacturer: "Acme", Model: "X1", Color: "Black", Capacity: "128", Status: "Available", PricePaid: 10000, ESN: "esn-2"},
		},
	}
	product := &catalog.Product{ID: 1, Name: "Acme X1"}
	adapter := &stubAdapter{vendorID: "vendor-a"}

	options := AggregateOptions(group, product, adapter)

	assert.Len(t, options, 1)
	option := options[0]
	assert.Equal(t, "Black", option.Color)
	assert.Equal(t, "128GB 4GB RAM", option.Variant)
	assert.Equal(t, 2, option.Stock)
	assert.Equal(t, float64(100), option.Price)
	assert.Equal(t, float64(100), option.Discount)
	assert.Equal(t, []string{"esn-1", "esn-2"}, option.UnitIDs)
	assert.NotEmpty(t, option.ID)
}

func TestAggregateOptions_StatusFilter(t *testing.T) {
	group := &Group{
		Items: []RawItem{
			{Color: "Black", Capacity: "64", Status: "Available", Serial: "s1"},
			{Color: "Black", Capacity: "64", Status: "Sold", Serial: "s2"},
			{Color: "Black", Capacity: "64", Status: "Pending", Serial: "s3"},
		},
	}
	product := &catalog.Product{ID: 1}

	t.Run("restricted counts Available only", func(t *testing.T) {
		options := AggregateOptions(group, product, &stubAdapter{})
		assert.Len(t, options, 1)
		assert.Equal(t, 1, options[0].Stock)
		assert.Equal(t, []string{"s1"}, options[0].UnitIDs)
	})

	t.Run("generic counts every non-Sold item", func(t *testing.T) {
		options := AggregateOptions(group, product, &stubAdapter{countAll: true})
		assert.Len(t, options, 1)
		assert.Equal(t, 2, options[0].Stock)
		assert.Equal(t, []string{"s1", "s3"}, options[0].UnitIDs)
	})
}

func TestAggregateOptions_SplitsByColorAndVariant(t *testing.T) {
	group := &Group{
		Items: []RawItem{
			{Color: "Black", Capacity: "64", Status: "Available", Serial: "s1"},
			{Color: "White", Capacity: "64", Status: "Available", Serial: "s2"},
			{Color: "Black", Capacity: "128", Status: "Available", Serial: "s3"},
		},
	}

	options := AggregateOptions(group, &catalog.Product{ID: 1}, &stubAdapter{})

	assert.Len(t, options, 3)
	for _, option := range options {
		assert.Equal(t, 1, option.Stock)
	}
}

func TestAggregateOptions_UnitIdentifierPriority(t *testing.T) {
	group := &Group{
		Items: []RawItem{
			{Color: "Black", Capacity: "64", Status: "Available", Serial: "serial", ESN: "esn", SKU: "sku"},
			{Color: "Black", Capacity: "64", Status: "Available", ESN: "esn", HexID: "hex"},
			{Color: "Black", Capacity: "64", Status: "Available", HexID: "hex"},
			{Color: "Black", Capacity: "64", Status: "Available", SKU: "sku"},
			{Color: "Black", Capacity: "64", Status: "Available"},
		},
	}

	options := AggregateOptions(group, &catalog.Product{ID: 1}, &stubAdapter{})

	assert.Len(t, options, 1)
	assert.Equal(t, []string{"serial", "esn", "hex", "sku", "unit-4"}, options[0].UnitIDs)
}

func TestVariantDescriptor(t *testing.T) {
	spec := "64GB 4GB RAM, 128GB 6GB RAM, 1TB 12GB RAM"

	tests := []struct {
		name     string
		capacity string
		variant  string
		spec     string
		want     string
	}{
		{"structured spec match", "128", "", spec, "128GB 6GB RAM"},
		{"spec match without unit suffix", "1TB", "", spec, "1TB 12GB RAM"},
		{"synthesized when no spec", "256", "", "", "256GB 4GB RAM"},
		{"synthesized when spec misses capacity", "256", "", spec, "256GB 4GB RAM"},
		{"vendor variant label fallback", "", "Dual SIM", "", "Dual SIM"},
		{"standard fallback", "", "", "", "Standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VariantDescriptor(tt.capacity, tt.variant, tt.spec))
		})
	}
}

func TestAllZero(t *testing.T) {
	assert.True(t, AllZero(nil))
	assert.True(t, AllZero([]catalog.Option{{Stock: 0}, {Stock: 0}}))
	assert.False(t, AllZero([]catalog.Option{{Stock: 0}, {Stock: 1}}))
}
