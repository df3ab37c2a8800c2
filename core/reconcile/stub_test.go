package reconcile

import (
	"context"
	"errors"
	"math"
	"strings"

	"inventory-sync/core/catalog"
)

// stubAdapter is a configurable test adapter. Its defaults mirror the
// restricted wholesale policy (Available-only, cents, additive merge,
// no product creation).
type stubAdapter struct {
	name     string
	vendorID string
	items    []RawItem
	fetchErr error

	merge       MergeStrategy
	allowCreate bool
	fixed       string
	countAll    bool
	dollarPrice bool
	noDiscount  bool
}

func (a *stubAdapter) Name() string {
	if a.name == "" {
		return "stub"
	}
	return a.name
}

func (a *stubAdapter) VendorID() string { return a.vendorID }

func (a *stubAdapter) Fetch(ctx context.Context) ([]RawItem, error) {
	if a.fetchErr != nil {
		return nil, a.fetchErr
	}
	return a.items, nil
}

func (a *stubAdapter) Countable(item RawItem) bool {
	if a.countAll {
		return item.Status != "Sold"
	}
	return item.Status == "Available"
}

func (a *stubAdapter) UnitPrice(pricePaid float64) float64 {
	if a.dollarPrice {
		return pricePaid
	}
	return math.Round(pricePaid / 100)
}

func (a *stubAdapter) Discount(price float64) float64 {
	if a.noDiscount {
		return 0
	}
	return price
}

func (a *stubAdapter) Merge() MergeStrategy { return a.merge }

func (a *stubAdapter) AllowCreate() bool { return a.allowCreate }

func (a *stubAdapter) FixedCondition() string { return a.fixed }

// fakeCatalog resolves products and conditions from in-memory maps,
// mimicking the real resolver's exact/substring/create behavior.
type fakeCatalog struct {
	products      map[string]*catalog.Product // keyed by lowercased name
	conditions    map[string]*catalog.Condition
	nextProduct   uint
	nextCondition uint
	resolveErr    map[string]error // candidate name -> forced error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		products:   make(map[string]*catalog.Product),
		conditions: make(map[string]*catalog.Condition),
	}
}

func (f *fakeCatalog) addProduct(p catalog.Product) *catalog.Product {
	f.nextProduct++
	p.ID = f.nextProduct
	f.products[strings.ToLower(p.Name)] = &p
	return &p
}

func (f *fakeCatalog) Resolve(ctx context.Context, manufacturer, model string, allowCreate bool) (*catalog.Product, error) {
	candidate := strings.TrimSpace(strings.TrimSpace(manufacturer) + " " + strings.TrimSpace(model))
	if candidate == "" {
		return nil, catalog.ErrNotFound
	}
	if err, ok := f.resolveErr[candidate]; ok {
		return nil, err
	}

	if product, ok := f.products[strings.ToLower(candidate)]; ok {
		return product, nil
	}
	if !allowCreate {
		if len(candidate) > 3 {
			lowered := strings.ToLower(candidate)
			for name, product := range f.products {
				if strings.Contains(name, lowered) {
					return product, nil
				}
			}
		}
		return nil, catalog.ErrNotFound
	}

	return f.addProduct(catalog.Product{
		Manufacturer: manufacturer,
		Model:        model,
		Category:     manufacturer,
		Name:         candidate,
	}), nil
}

func (f *fakeCatalog) Condition(ctx context.Context, name string, allowCreate bool) (*catalog.Condition, error) {
	label := strings.TrimSpace(name)
	if condition, ok := f.conditions[strings.ToLower(label)]; ok {
		return condition, nil
	}
	if !allowCreate {
		return nil, catalog.ErrNotFound
	}
	f.nextCondition++
	condition := &catalog.Condition{ID: f.nextCondition, Name: label}
	f.conditions[strings.ToLower(label)] = condition
	return condition, nil
}

// fakeListings is an in-memory ListingStore with optional per-operation
// failure injection.
type fakeListings struct {
	listings  map[uint]*catalog.Listing
	nextID    uint
	createErr error
	updateErr error
}

func newFakeListings() *fakeListings {
	return &fakeListings{listings: make(map[uint]*catalog.Listing)}
}

func (f *fakeListings) ListByVendor(ctx context.Context, vendorID string) ([]catalog.Listing, error) {
	result := make([]catalog.Listing, 0)
	for id := uint(1); id <= f.nextID; id++ {
		listing, ok := f.listings[id]
		if ok && listing.VendorID == vendorID {
			result = append(result, *listing)
		}
	}
	return result, nil
}

func (f *fakeListings) Create(ctx context.Context, listing *catalog.Listing) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	listing.ID = f.nextID
	stored := *listing
	f.listings[listing.ID] = &stored
	return nil
}

func (f *fakeListings) Update(ctx context.Context, listing *catalog.Listing) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.listings[listing.ID]; !ok {
		return errors.New("listing not found")
	}
	stored := *listing
	f.listings[listing.ID] = &stored
	return nil
}

func (f *fakeListings) byKey(vendorID string, productID, conditionID uint) *catalog.Listing {
	for _, listing := range f.listings {
		if listing.VendorID == vendorID && listing.ProductID == productID && listing.ConditionID == conditionID {
			return listing
		}
	}
	return nil
}
