package reconcile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inventory-sync/core/catalog"
)

// AggregateOptions folds a group's countable items into per-(color,
// variant) option records. The first item under a new key initializes the
// option (stock 0, converted price, adapter discount, fresh identity);
// every countable item then increments stock and appends its unit
// identifier. Options are returned in first-seen order.
func AggregateOptions(group *Group, product *catalog.Product, adapter Adapter) []catalog.Option {
	options := make([]catalog.Option, 0)
	index := make(map[string]int)

	for i, item := range group.Items {
		if !adapter.Countable(item) {
			continue
		}

		variant := VariantDescriptor(item.Capacity, item.Variant, product.StorageSpec)
		key := item.Color + "|" + variant

		at, ok := index[key]
		if !ok {
			price := adapter.UnitPrice(item.PricePaid)
			options = append(options, catalog.Option{
				ID:       uuid.NewString(),
				Color:    item.Color,
				Variant:  variant,
				Stock:    0,
				Price:    price,
				Discount: adapter.Discount(price),
				UnitIDs:  []string{},
			})
			at = len(options) - 1
			index[key] = at
		}

		options[at].Stock++
		options[at].UnitIDs = append(options[at].UnitIDs, unitIdentifier(item, i))
	}

	return options
}

// AllZero reports whether every option in the slice carries zero stock.
// Groups for which this holds produce no record at all on first sighting;
// an existing record for the same (product, condition) is handled by the
// zero-out path instead.
func AllZero(options []catalog.Option) bool {
	for _, option := range options {
		if option.Stock > 0 {
			return false
		}
	}
	return true
}

// VariantDescriptor derives the human-readable variant descriptor for an
// item.
//
// When the product carries a structured storage spec (comma-separated
// "NGB ... RAM" tokens), the token containing "{capacity}GB" is used
// verbatim; failing that, the token containing the bare capacity. With no
// spec match the descriptor falls back to a synthesized
// "{capacity}GB 4GB RAM", then to the vendor-reported variant label, then
// to "Standard".
func VariantDescriptor(capacity, vendorVariant, storageSpec string) string {
	capacity = strings.TrimSpace(capacity)

	if capacity != "" && storageSpec != "" {
		tokens := strings.Split(storageSpec, ",")

		for _, token := range tokens {
			if strings.Contains(token, capacity+"GB") {
				return strings.TrimSpace(token)
			}
		}
		for _, token := range tokens {
			if strings.Contains(token, capacity) {
				return strings.TrimSpace(token)
			}
		}
	}

	if capacity != "" {
		return capacity + "GB 4GB RAM"
	}
	if vendorVariant != "" {
		return vendorVariant
	}
	return "Standard"
}

// unitIdentifier picks the unit's identity: first non-empty of serial,
// ESN, hex id, SKU, falling back to a synthetic index-based id so every
// counted unit is represented in the option's unit list.
func unitIdentifier(item RawItem, index int) string {
	for _, candidate := range []string{item.Serial, item.ESN, item.HexID, item.SKU} {
		if candidate != "" {
			return candidate
		}
	}
	return fmt.Sprintf("unit-%d", index)
}
