package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver matches a vendor-reported manufacturer/model pair to a canonical
// product. Matching is heuristic (exact name, then substring) with
// first-match-wins semantics; the strategy lives behind this type so it can
// be swapped without touching callers.
type Resolver struct {
	store  *Store
	images *ImageFinder
	log    *zap.Logger

	// sf deduplicates concurrent lookups for the same candidate name.
	// Vendor pipelines run in parallel and frequently resolve the same
	// products; without this, two pipelines could race to create the
	// same catalog entry.
	sf singleflight.Group
}

// NewResolver creates a resolver backed by the given store. The image
// finder is optional; when nil, auto-created products get no images.
func NewResolver(store *Store, images *ImageFinder, log *zap.Logger) *Resolver {
	return &Resolver{store: store, images: images, log: log}
}

// Resolve looks up the canonical product for a manufacturer/model pair.
//
// The candidate name is "{manufacturer} {model}" trimmed. Lookup order:
// case-insensitive exact match on the stored name; when allowCreate is
// false and the candidate exceeds 3 characters, a case-insensitive
// substring match (the length guard prevents over-broad matches on very
// short names). When allowCreate is true and nothing matches, a new
// product is created with category defaulting to the manufacturer.
// Returns ErrNotFound (wrapped) when nothing matches and creation is not
// permitted.
func (r *Resolver) Resolve(ctx context.Context, manufacturer, model string, allowCreate bool) (*Product, error) {
	candidate := strings.TrimSpace(strings.TrimSpace(manufacturer) + " " + strings.TrimSpace(model))

	// Items with no recognizable manufacturer/model never match and must
	// not create unnamed catalog entries either.
	if candidate == "" {
		return nil, fmt.Errorf("product with empty name: %w", ErrNotFound)
	}

	key := "product|" + strings.ToLower(candidate)
	if allowCreate {
		key += "|create"
	}

	result, err, _ := r.sf.Do(key, func() (any, error) {
		product, err := r.store.ProductByName(ctx, candidate)
		if err == nil {
			return product, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		if !allowCreate {
			if len(candidate) > 3 {
				product, err = r.store.ProductBySubstring(ctx, candidate)
				if err == nil {
					return product, nil
				}
				if !errors.Is(err, ErrNotFound) {
					return nil, err
				}
			}
			return nil, err
		}

		created := &Product{
			Manufacturer:  strings.TrimSpace(manufacturer),
			Model:         strings.TrimSpace(model),
			Category:      strings.TrimSpace(manufacturer),
			Name:          candidate,
			ImagesByColor: r.lookupImages(ctx, manufacturer, model),
		}
		if err := r.store.CreateProduct(ctx, created); err != nil {
			return nil, err
		}
		r.log.Info("Created catalog product",
			zap.String("name", created.Name),
			zap.Uint("id", created.ID),
		)
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Product), nil
}

// Condition looks up a grade label by case-insensitive exact match,
// creating it when allowCreate is true and no entry exists.
func (r *Resolver) Condition(ctx context.Context, name string, allowCreate bool) (*Condition, error) {
	label := strings.TrimSpace(name)

	key := "condition|" + strings.ToLower(label)
	if allowCreate {
		key += "|create"
	}

	result, err, _ := r.sf.Do(key, func() (any, error) {
		condition, err := r.store.ConditionByName(ctx, label)
		if err == nil {
			return condition, nil
		}
		if !errors.Is(err, ErrNotFound) || !allowCreate {
			return nil, err
		}

		created := &Condition{Name: label}
		if err := r.store.CreateCondition(ctx, created); err != nil {
			return nil, err
		}
		r.log.Info("Created condition", zap.String("name", created.Name), zap.Uint("id", created.ID))
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Condition), nil
}

// lookupImages asks the image finder for per-color images. Image lookup is
// best-effort; failures leave the map empty and never fail resolution.
func (r *Resolver) lookupImages(ctx context.Context, manufacturer, model string) map[string]string {
	if r.images == nil {
		return map[string]string{}
	}
	images, err := r.images.ImagesByColor(ctx, manufacturer, model)
	if err != nil {
		r.log.Warn("Image lookup failed",
			zap.String("manufacturer", manufacturer),
			zap.String("model", model),
			zap.Error(err),
		)
		return map[string]string{}
	}
	return images
}
