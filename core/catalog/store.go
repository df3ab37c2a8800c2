package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no catalog entry.
var ErrNotFound = errors.New("catalog: not found")

// Store provides persistence for products, conditions, and vendor listings
// on top of a gorm connection.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new catalog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the catalog tables.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Product{}, &Condition{}, &Listing{})
}

// ProductByName finds a product by case-insensitive exact name match.
func (s *Store) ProductByName(ctx context.Context, name string) (*Product, error) {
	var product Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id").
		First(&product).Error
	if err != nil {
		return nil, mapNotFound(err, "product %q", name)
	}
	return &product, nil
}

// ProductBySubstring finds the first product whose name contains the given
// string, case-insensitively. First match (lowest ID) wins; ties are not
// disambiguated further.
func (s *Store) ProductBySubstring(ctx context.Context, name string) (*Product, error) {
	var product Product
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		Order("id").
		First(&product).Error
	if err != nil {
		return nil, mapNotFound(err, "product matching %q", name)
	}
	return &product, nil
}

// CreateProduct inserts a new product and populates its assigned ID.
func (s *Store) CreateProduct(ctx context.Context, product *Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product %q: %w", product.Name, err)
	}
	return nil
}

// ConditionByName finds a condition by case-insensitive exact name match.
func (s *Store) ConditionByName(ctx context.Context, name string) (*Condition, error) {
	var condition Condition
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Order("id").
		First(&condition).Error
	if err != nil {
		return nil, mapNotFound(err, "condition %q", name)
	}
	return &condition, nil
}

// CreateCondition inserts a new condition and populates its assigned ID.
func (s *Store) CreateCondition(ctx context.Context, condition *Condition) error {
	if err := s.db.WithContext(ctx).Create(condition).Error; err != nil {
		return fmt.Errorf("failed to create condition %q: %w", condition.Name, err)
	}
	return nil
}

// ListByVendor returns every listing persisted for the given vendor.
func (s *Store) ListByVendor(ctx context.Context, vendorID string) ([]Listing, error) {
	listings := make([]Listing, 0)
	err := s.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings for vendor %s: %w", vendorID, err)
	}
	return listings, nil
}

// Create inserts a new listing.
func (s *Store) Create(ctx context.Context, listing *Listing) error {
	if err := s.db.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing for vendor %s: %w", listing.VendorID, err)
	}
	return nil
}

// Update saves an existing listing by primary key. The full options
// document is written back in one statement, so each update is atomic in
// isolation even when a batch around it is not.
func (s *Store) Update(ctx context.Context, listing *Listing) error {
	if listing.ID == 0 {
		return fmt.Errorf("cannot update listing without identity (vendor %s)", listing.VendorID)
	}
	if err := s.db.WithContext(ctx).Save(listing).Error; err != nil {
		return fmt.Errorf("failed to update listing %d: %w", listing.ID, err)
	}
	return nil
}

// mapNotFound converts gorm's record-not-found into ErrNotFound, keeping
// other errors wrapped with context.
func mapNotFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return fmt.Errorf("lookup "+format+": %w", append(args, err)...)
}
