// Package logger builds the application's slog.Logger from config. The
// file sink uses lumberjack rotation and is the default: while the TUI is
// running, writes to the terminal would corrupt the screen.
package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"

	"shopterm/internal/config"
)

// New returns a logger for the configured sink.
func New(cfg config.LogConfig) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	switch cfg.Type {
	case "console":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("file path required for file logger")
		}
		writer := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		return slog.New(slog.NewJSONHandler(writer, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", cfg.Type)
	}
}

func parseLevel(level string) slog.Level {
	switch level {
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
