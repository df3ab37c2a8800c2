// Package logger provides a structured logging facility based on Zap.
//
// It produces a configured logger supporting development (console) and
// production (json) encodings, and integrates with the Fiber web framework.
//
// # Request correlation
//
// WithRayID extracts the ray_id set by the rayid middleware from a Fiber
// context and attaches it to the log entry, so all logs for a request can
// be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
