// Package logging provides the shared structured logger for cli-blocks.
//
// Components obtain a [log/slog] logger tagged with their name. Records are
// formatted by a charmbracelet/log handler writing to stderr, so log output
// never interleaves with the terminal UI drawn on stdout. The initial level
// comes from the CLI_BLOCKS_LOG_LEVEL environment variable (debug, info,
// warn, error) and defaults to INFO; SetLevel changes it at runtime, which
// is how the --verbose flag raises it to DEBUG.
//
// Usage:
//
//	log := logging.New("blocks")
//	log.Info("loaded document", "path", p, "blocks", n)
//	log.Error("save failed", "error", err)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

// timeFormat renders timestamps as "HH:MM:SS.cc".
const timeFormat = "15:04:05.00"

var (
	initLogger  sync.Once
	baseHandler *charmlog.Logger
	baseLogger  *slog.Logger
)

// New returns a logger scoped to the given component name.
//
// The component is attached as a "component" attribute to every record. An
// empty component returns the base logger. The base logger is created on
// the first call and shared afterwards.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseHandler = newHandler(os.Stderr, parseLevel(os.Getenv("CLI_BLOCKS_LOG_LEVEL")))
		baseLogger = slog.New(baseHandler)
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetLevel changes the level of the shared handler. Loggers already handed
// out by New observe the change.
func SetLevel(level slog.Level) {
	New("")
	baseHandler.SetLevel(toCharmLevel(level))
}

// newHandler builds a charmbracelet/log handler writing to w.
func newHandler(w io.Writer, level slog.Level) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      timeFormat,
		Level:           toCharmLevel(level),
	})
}

func toCharmLevel(level slog.Level) charmlog.Level {
	switch {
	case level <= slog.LevelDebug:
		return charmlog.DebugLevel
	case level <= slog.LevelInfo:
		return charmlog.InfoLevel
	case level <= slog.LevelWarn:
		return charmlog.WarnLevel
	default:
		return charmlog.ErrorLevel
	}
}

// parseLevel converts a human-readable log level string to a [slog.Level].
//
// Recognized values (case-insensitive, whitespace-trimmed):
//   - "debug"           → slog.LevelDebug
//   - "warn", "warning" → slog.LevelWarn
//   - "error"           → slog.LevelError
//   - anything else     → slog.LevelInfo (the default)
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
