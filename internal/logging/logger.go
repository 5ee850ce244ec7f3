package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/spellit/internal/config"
)

// Discard is the LogConfig.File value that disables logging.
const Discard = "-"

// New creates a *slog.Logger based on the provided LogConfig and sets it
// as the default logger via slog.SetDefault.
//
// The terminal belongs to the TUI, so output goes to cfg.File, or to
// fallback when cfg.File is empty. The returned closer releases the file.
//
// Format "json" produces structured JSON output.
// Format "text" produces human-readable output with source info.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func New(cfg config.LogConfig, fallback string) (*slog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		path = fallback
	}

	w, closer, err := openSink(path)
	if err != nil {
		return nil, nil, err
	}

	logger := NewWithWriter(cfg, w)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// NewWithWriter builds a logger writing to w without touching the default.
func NewWithWriter(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func openSink(path string) (io.Writer, io.Closer, error) {
	if path == "" || path == Discard {
		return io.Discard, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
