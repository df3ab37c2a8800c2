// Package database manages the MySQL connection for the catalog store.
//
// The connection is created once at startup with pooling and strict
// timeouts, pinged before use, and handed down explicitly to every
// component that needs it. There is deliberately no package-level shared
// handle.
package database
