// Package logging sets up the debug log. Stdout carries the status line and
// stderr is reserved for fatal errors, so records only ever go to a rotating
// file, and only when debug is on.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	Debug bool
	Path  string
}

// New returns a logger and a close func. With debug off, or when the log
// directory cannot be created, records are discarded.
func New(opts Options) (*slog.Logger, func() error) {
	if !opts.Debug || opts.Path == "" {
		return Discard(), func() error { return nil }
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return Discard(), func() error { return nil }
	}

	w := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    5, // MB
		MaxBackups: 3,
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("pid", os.Getpid()), w.Close
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
