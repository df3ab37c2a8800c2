// Package feed implements the vendor feed adapters.
//
// Every vendor feed is an HTTP endpoint returning {"data": [...]} behind
// Basic auth; the Client handles transport and tolerant decoding, while
// the two adapter classes own their vendor-specific field mapping and
// reconciliation policy:
//
//   - GenericAdapter: dollar prices, dynamic grade labels, non-Sold items
//     count, replace-on-update, creates unknown products.
//   - WholecellAdapter: cent prices, fixed condition per vendor, only
//     Available items count, additive merge, skips unknown products.
//
// Both implement reconcile.Adapter, so the reconciliation pipeline itself
// is shared.
package feed
