// Package loader wires application features onto the HTTP server.
//
// Each feature implements the Feature interface and registers its own
// routes; the Manager loads them in order at startup.
package loader
