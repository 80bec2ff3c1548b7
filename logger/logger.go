// Package logger provides structured logging for the dataset pipeline.
//
// It wraps Go's standard log/slog with a process-wide logger, level control
// via the LOG_LEVEL environment variable or a verbose flag, and a few
// convenience functions for the events the pipeline cares about (generator
// runs, rejected examples, written splits).
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// DefaultLogger is the global structured logger instance.
// It is safe for concurrent use and initialized with slog.LevelInfo by default.
var DefaultLogger *slog.Logger

func init() {
	level := slog.LevelInfo
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		switch strings.ToLower(envLevel) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn", "warning":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	DefaultLogger = slog.New(handler)
}

// SetLevel changes the logging level for all subsequent log operations.
func SetLevel(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	DefaultLogger = slog.New(handler)
}

// SetVerbose enables debug-level logging when verbose is true, otherwise
// sets info-level. Convenience wrapper for command-line verbose flags.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

// Debug logs a debug-level message with structured key-value attributes.
func Debug(msg string, args ...any) {
	DefaultLogger.Debug(msg, args...)
}

// Info logs an informational message with structured key-value attributes.
func Info(msg string, args ...any) {
	DefaultLogger.Info(msg, args...)
}

// Warn logs a warning message with structured key-value attributes.
func Warn(msg string, args ...any) {
	DefaultLogger.Warn(msg, args...)
}

// Error logs an error message with structured key-value attributes.
func Error(msg string, args ...any) {
	DefaultLogger.Error(msg, args...)
}

// GeneratorRun logs one scenario generator invocation.
func GeneratorRun(name string, produced int, attrs ...any) {
	allAttrs := make([]any, 0, 4+len(attrs))
	allAttrs = append(allAttrs,
		"generator", name,
		"examples", produced,
	)
	allAttrs = append(allAttrs, attrs...)
	Debug("generator run", allAttrs...)
}

// ExampleRejected logs a malformed example dropped during pooling, with
// enough context to find the offending literal.
func ExampleRejected(generator string, index int, err error) {
	Warn("example rejected",
		"generator", generator,
		"index", index,
		"error", err,
	)
}

// SplitWritten logs a persisted dataset split.
func SplitWritten(name, path string, count int) {
	Info("split written",
		"split", name,
		"path", path,
		"examples", count,
	)
}
