// Package logger provides a structured logging facility based on Zap.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// Entries are written to stderr so that reports printed on stdout stay clean.
//
// # Run IDs
//
// Every check run is tagged with a run_id (a UUID) through WithRunID, so all
// entries of one run can be correlated, including the id stored with an
// uploaded report.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Checking BOM", zap.String("bom", path))
package logger
