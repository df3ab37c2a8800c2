// Package inventory exposes the reconciliation engine over HTTP: sync
// triggers (full or scoped per adapter class) and per-vendor listing
// reads. Feed adapters live in the feed subpackage.
package inventory
