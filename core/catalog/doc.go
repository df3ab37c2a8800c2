// Package catalog owns the canonical product catalog: products, grade
// conditions, and per-vendor listings, persisted through gorm.
//
// # Models
//
// Product and Condition are catalog-wide entries that outlive any single
// vendor. Listing is the persisted unit of reconciliation: one vendor's
// stock for one (product, condition) pair, holding a JSON document of
// per-(color, variant) options. Listings are never deleted, only zeroed.
//
// # Resolution
//
// The Resolver matches loosely-structured vendor labels against catalog
// names (case-insensitive exact match, then substring for sufficiently
// long candidates, first match wins). The matching heuristic is isolated
// behind the Resolver so it can be replaced (e.g. by an external fuzzy
// matching service) without touching the reconciliation engine.
//
// Concurrent lookups for the same candidate are collapsed with
// singleflight, since vendor pipelines run in parallel and often resolve
// the same products.
package catalog
