// Package logger provides nil-safe slog attribute helpers used across the module.
//
// Helpers return an empty slog.Attr for nil or empty input, so calls like
//
//	log.Warn("invocation failed", logger.Error(err), logger.InvocationID(id))
//
// need no explicit nil checks; slog drops empty attributes.
package logger
