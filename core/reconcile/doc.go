// Package reconcile implements the inventory reconciliation engine: it
// normalizes raw vendor feed items into canonical records, matches them
// against the catalog, aggregates per-variant stock, diffs the result
// against the vendor's persisted listings, and commits a minimal,
// idempotent set of create/update/zero-out operations.
//
// # Architecture
//
// The engine is one pipeline parameterized by an Adapter, which bundles a
// vendor's feed access with its policy: status filtering, price unit
// conversion, discount rule, merge strategy, and create-vs-skip behavior
// for unknown products. Two adapter classes exist (see feature/inventory/feed):
// the generic adapter (dynamic conditions, replace-on-update) and the
// restricted "wholecell" adapter (fixed condition, additive merge,
// skip-on-missing-product).
//
// # Pipeline stages
//
//  1. Fetch: the adapter pulls and field-maps the vendor's item list.
//  2. Group: items partition by raw (manufacturer, model, grade).
//  3. Resolve: each group's product and condition map to catalog entries.
//  4. Aggregate: countable items fold into per-(color, variant) options.
//  5. Diff: the computed set compares against persisted listings,
//     planning creates, merge-updates, and zero-outs.
//  6. Commit: the operation batch applies best-effort, unordered.
//
// # Failure isolation
//
// A feed failure isolates the whole vendor; a resolution failure isolates
// one group (counted as skipped); a commit failure is reported alongside
// the counts of operations that did apply. The Orchestrator runs vendors
// concurrently with fully independent outcomes.
//
// # Invariants
//
// Listings are never deleted, only zeroed (soft tombstone), and at most
// one listing exists per (vendor, product, condition) tuple.
package reconcile
