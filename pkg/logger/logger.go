package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Default logger
	Log *slog.Logger
)

func init() {
	// Quiet by default so command output stays readable
	opts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	Log = slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// SetupWriter initializes the global logger writing to w
func SetupWriter(w io.Writer, format string, level string) {
	var handler slog.Handler
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// ParseLevel maps a level name to a slog level. Unknown names map to warn.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// Helper functions for easy access

func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}

func With(args ...any) *slog.Logger {
	return Log.With(args...)
}
