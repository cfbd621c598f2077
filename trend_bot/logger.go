package trendbot

import (
	"io"
	"log/slog"
	"os"
)

// AppName is attached to every record written by the default logger.
const AppName = "trend-thread-bot"

var (
	pkgLogLevel = new(slog.LevelVar)
	pkgLogger   = NewLogger(os.Stdout, pkgLogLevel)
)

// NewLogger returns a text logger writing to w whose level follows level.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With("app", AppName)
}

// Logger returns the logger used by the bot, so callers log through the
// same handler and level.
func Logger() *slog.Logger {
	return pkgLogger
}

// SetLogger replaces the package logger. SetLogLevel only affects loggers
// built by NewLogger with the package level, as the default one is.
func SetLogger(l *slog.Logger) {
	pkgLogger = l
}

// SetLogLevel changes the level of the default logger.
func SetLogLevel(level slog.Level) {
	pkgLogLevel.Set(level)
}

// ParseLogLevel maps a config value such as "debug" or "WARN" to a slog level.
// Unknown values fall back to Info.
func ParseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
