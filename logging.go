package ui

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// log is the package's shared structured logger, built the way the
// teacher's guiLogger is: a text handler to stderr with a mutable level.
var log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogLevel adjusts the package logger's verbosity at runtime.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}

func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}
