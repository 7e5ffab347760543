// Package slogger is the application-wide structured logging facade.
// Call sites log through package functions with a Fields map; the
// backing slog handler is configured once at startup.
package slogger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Fields carries structured log attributes.
type Fields map[string]any

var (
	loggerMu sync.RWMutex
	logger   = slog.New(slog.NewJSONHandler(os.Stderr, nil)) //nolint:gochecknoglobals // Singleton logging infrastructure.
)

// Configure installs the process-wide logger. Level is one of debug,
// info, warn, error; format is json or text. Unknown values fall back to
// info and json.
func Configure(level, format string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if strings.ToLower(format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	loggerMu.Lock()
	logger = slog.New(handler)
	loggerMu.Unlock()
}

// SetLogger installs a custom logger (useful for testing).
func SetLogger(l *slog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func log(ctx context.Context, level slog.Level, msg string, fields Fields) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()

	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	l.Log(ctx, level, msg, attrs...)
}

// Debug logs a debug message with context.
func Debug(ctx context.Context, msg string, fields Fields) {
	log(ctx, slog.LevelDebug, msg, fields)
}

// Info logs an info message with context.
func Info(ctx context.Context, msg string, fields Fields) {
	log(ctx, slog.LevelInfo, msg, fields)
}

// Warn logs a warning message with context.
func Warn(ctx context.Context, msg string, fields Fields) {
	log(ctx, slog.LevelWarn, msg, fields)
}

// Error logs an error message with context.
func Error(ctx context.Context, msg string, fields Fields) {
	log(ctx, slog.LevelError, msg, fields)
}

// ErrorWithError logs an error message with an error object attached.
func ErrorWithError(ctx context.Context, err error, msg string, fields Fields) {
	if fields == nil {
		fields = Fields{}
	}
	fields["error"] = err
	log(ctx, slog.LevelError, msg, fields)
}
