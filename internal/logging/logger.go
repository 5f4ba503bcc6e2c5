package logging

import (
	"log/slog"
	"os"
)

// Logger is the global logger instance used throughout the application.
var Logger *slog.Logger

func init() {
	InitLogger(0)
}

// verbosities maps the -v flag count onto log levels.
var verbosities = []slog.Level{
	slog.LevelError,
	slog.LevelWarn,
	slog.LevelInfo,
	slog.LevelDebug,
}

// InitLogger initializes the global logger for the given verbosity count
// (0 = error only, 3 or more = debug).
func InitLogger(verbosity int) {
	if verbosity < 0 {
		verbosity = 0
	}
	if verbosity >= len(verbosities) {
		verbosity = len(verbosities) - 1
	}

	Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: verbosities[verbosity],
	}))
}
