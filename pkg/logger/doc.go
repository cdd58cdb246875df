// Package logger provides a small factory around log/slog with functional
// options for format, level, output, and static attributes.
//
// JSON output with INFO level is the default, suitable for log aggregation
// in production; WithDevelopment switches to human-readable text output at
// debug level for local runs.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("tradecheck"),
//	    logger.WithAttr(slog.String("run", runID)),
//	)
//	log.Info("validation started")
package logger
