package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestStore creates a migrated store over an in-memory SQLite DB.
func setupTestStore(t *testing.T, dbName string) *Store {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store
}

func TestProductByName(t *testing.T) {
	store := setupTestStore(t, "product_by_name")
	ctx := context.Background()

	assert.NoError(t, store.CreateProduct(ctx, &Product{Manufacturer: "Apple", Model: "iPhone 13", Name: "Apple iPhone 13"}))

	product, err := store.ProductByName(ctx, "apple IPHONE 13")
	assert.NoError(t, err)
	assert.Equal(t, "Apple iPhone 13", product.Name)

	_, err = store.ProductByName(ctx, "Apple iPhone 99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductBySubstring(t *testing.T) {
	store := setupTestStore(t, "product_by_substring")
	ctx := context.Background()

	assert.NoError(t, store.CreateProduct(ctx, &Product{Name: "Apple iPhone 13 Pro"}))
	assert.NoError(t, store.CreateProduct(ctx, &Product{Name: "Case for Apple iPhone 13"}))

	// Lowest ID wins when several names contain the fragment.
	product, err := store.ProductBySubstring(ctx, "iphone 13")
	assert.NoError(t, err)
	assert.Equal(t, "Apple iPhone 13 Pro", product.Name)

	_, err = store.ProductBySubstring(ctx, "galaxy")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConditionByName(t *testing.T) {
	store := setupTestStore(t, "condition_by_name")
	ctx := context.Background()

	assert.NoError(t, store.CreateCondition(ctx, &Condition{Name: "Refurbished"}))

	condition, err := store.ConditionByName(ctx, "REFURBISHED")
	assert.NoError(t, err)
	assert.Equal(t, "Refurbished", condition.Name)

	_, err = store.ConditionByName(ctx, "Mint")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListingRoundTrip(t *testing.T) {
	store := setupTestStore(t, "listing_round_trip")
	ctx := context.Background()

	listing := &Listing{
		VendorID:    "vendor-a",
		ProductID:   1,
		ConditionID: 2,
		Options: []Option{
			{ID: "o1", Color: "Black", Variant: "128GB 4GB RAM", Stock: 2, Price: 100, Discount: 100, UnitIDs: []string{"esn-1", "esn-2"}},
		},
	}
	assert.NoError(t, store.Create(ctx, listing))
	assert.NotZero(t, listing.ID)

	// The options document survives the JSON serializer round trip.
	loaded, err := store.ListByVendor(ctx, "vendor-a")
	assert.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Equal(t, listing.Options, loaded[0].Options)

	loaded[0].Options[0].Stock = 0
	loaded[0].Options[0].UnitIDs = []string{}
	assert.NoError(t, store.Update(ctx, &loaded[0]))

	reloaded, err := store.ListByVendor(ctx, "vendor-a")
	assert.NoError(t, err)
	assert.Equal(t, 0, reloaded[0].Options[0].Stock)
	assert.Empty(t, reloaded[0].Options[0].UnitIDs)
}

func TestListByVendor_FiltersOtherVendors(t *testing.T) {
	store := setupTestStore(t, "list_by_vendor")
	ctx := context.Background()

	assert.NoError(t, store.Create(ctx, &Listing{VendorID: "vendor-a", ProductID: 1, ConditionID: 1}))
	assert.NoError(t, store.Create(ctx, &Listing{VendorID: "vendor-b", ProductID: 1, ConditionID: 1}))

	listings, err := store.ListByVendor(ctx, "vendor-a")
	assert.NoError(t, err)
	assert.Len(t, listings, 1)
	assert.Equal(t, "vendor-a", listings[0].VendorID)
}

func TestUpdate_RequiresIdentity(t *testing.T) {
	store := setupTestStore(t, "update_identity")

	err := store.Update(context.Background(), &Listing{VendorID: "vendor-a"})
	assert.Error(t, err)
}
