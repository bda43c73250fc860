// Package logging provides structured logging for bridge runs.
//
// This package wraps Go's log/slog to emit JSON-formatted logs with
// persistent attributes, so that each abstraction and implementor in a run
// can be told apart after the fact.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* methods share the underlying writer.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("operation completed", "implementor", "a")
//
// Use [NewWriterLogger] to log to an arbitrary writer (the CLI passes its
// stderr), and [NopLogger] to discard everything.
//
// # Context Propagation
//
//	componentLogger := logger.WithComponent("abstraction").WithVariant("logged")
//	componentLogger.Debug("delegating")
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"delegating","component":"abstraction","variant":"logged"}
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: debug
//	  dir: /tmp/bridge
package logging
