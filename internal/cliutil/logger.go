// Package cliutil holds the small pieces of plumbing shared by the
// shortcrypt command-line tool's subcommands: logger setup and a request
// correlation id, adapted from dittofs's internal/logger package down to
// what a short-lived CLI invocation needs (no color handler, no context
// propagation across goroutines).
package cliutil

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// NewLogger builds a slog.Logger writing to stderr at level and in format
// ("text" or "json"), keeping stdout free for command output that a user
// might pipe or redirect.
func NewLogger(level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewRequestID returns a fresh correlation id for tagging one command
// invocation's log lines, the same uuid.New().String() pattern the teacher
// uses to mint encrypted filenames.
func NewRequestID() string {
	return uuid.New().String()
}
