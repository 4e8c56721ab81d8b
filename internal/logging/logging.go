package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/megamarkets/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. The terminal belongs to the UI, so
// without a configured log file everything is discarded. The returned closer
// flushes and releases the log file. A configured file whose directory cannot
// be created is an error.
func New(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg == nil || cfg.Logging.File == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory for %s: %w", cfg.Logging.File, err)
	}

	fileLogger := &lumberjack.Logger{
		Filename:   cfg.Logging.File,
		MaxSize:    cfg.Logging.MaxSizeMB, // Megabytes
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAgeDays, // Days
		Compress:   cfg.Logging.Compress,
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Logging.Level)}
	return slog.New(slog.NewJSONHandler(fileLogger, opts)), fileLogger, nil
}

// ParseLevel maps a config level name onto slog; unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
