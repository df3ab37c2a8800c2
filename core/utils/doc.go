// Package utils provides conversion helpers for loosely-typed values.
//
// Vendor feeds disagree on field types (capacities as numbers or strings,
// prices as either), so the feed adapters decode items generically and
// coerce fields through these helpers instead of failing on type
// mismatches.
package utils
