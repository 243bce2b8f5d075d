package app

import (
	"io"
	"log/slog"
	"maps"
	"slices"
)

// logLevels maps the accepted --log-level values to slog levels. NewConfig
// validates against it, so NewLogger never sees an unknown name from the CLI.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevels returns the accepted level names, sorted.
func LogLevels() []string {
	return slices.Sorted(maps.Keys(logLevels))
}

// NewLogger creates and configures a new slog.Logger instance writing text
// or JSON records to outW. It does not set the global logger, allowing for
// isolated logger instances. An unknown level name logs at info.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
