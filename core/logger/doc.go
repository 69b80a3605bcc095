// Package logger provides a structured logging facility based on Zap.
//
// Every pipeline failure that is swallowed or accumulated instead of returned
// (skipped records, failed fetches, empty lists after store errors) is
// reported through this logger, so it is the diagnostic channel of the
// application.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Import completed", zap.Int("count", n))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
