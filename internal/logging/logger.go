// Package logging builds the service logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level string
	// File enables a rotated log file next to stdout. Empty means stdout only.
	File       string
	MaxSizeMB  int
	MaxBackups int
	JSON       bool
	// Console receives every record. Defaults to stdout.
	Console io.Writer
}

// Setup returns the logger and a closer for the log file, if any.
func Setup(p Params) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	if p.Console != nil {
		out = p.Console
	}
	var closer io.Closer = nopCloser{}

	if p.File != "" {
		if !strings.HasSuffix(p.File, ".log") {
			p.File += ".log"
		}
		maxSize := p.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 50
		}
		lj := &lumberjack.Logger{
			Filename:   p.File,
			MaxSize:    maxSize, // megabytes
			MaxBackups: p.MaxBackups,
			Compress:   true,
		}
		out = io.MultiWriter(out, lj)
		closer = lj
	}

	return New(out, p.Level, p.JSON), closer
}

// New builds a logger writing to w.
func New(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Discard is a logger for tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
