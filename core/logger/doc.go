// Package logger provides a structured logging facility based on Zap.
//
// It doubles as the diagnostics sink for the reconciliation engine: soft
// ingestion anomalies are reported here instead of failing the run, so the
// console output of the CLI stays an accurate account of what was dropped.
//
// # Context Awareness
//
// When serving the read-only API, the WithRayID helper extracts the RayID
// from a Fiber context and attaches it to the log entry, ensuring that all
// logs related to a specific request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (CLI default) or json (server use)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("System populated")
package logger
