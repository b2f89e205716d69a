// Package logging installs the slog default handler shared by the server
// and the shoplist CLI.
//
// The level comes from LOG_LEVEL (debug, info, warn, error; default info).
// Output is colored with tint unless NO_COLOR is set.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a default logger on stderr at the LOG_LEVEL level.
func Setup() {
	SetupWithLevel(LevelFromEnv())
}

// SetupWithLevel installs a default logger on stderr at level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}

// New builds a tint logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	_, noColor := os.LookupEnv("NO_COLOR")
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level <= slog.LevelDebug,
		NoColor:    noColor,
	}))
}

// LevelFromEnv parses LOG_LEVEL.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"), slog.LevelInfo)
}

// ParseLevel maps a level name to a slog.Level, returning fallback for
// anything it does not recognize.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
