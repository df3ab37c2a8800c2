// Package middleware groups the Fiber middleware used by the HTTP server:
// rayid (request correlation ids) and auth (API key protection).
package middleware
