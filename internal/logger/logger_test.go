package logger

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopterm/internal/config"
)

func TestNewConsoleLogger(t *testing.T) {
	log, err := New(config.LogConfig{Level: "debug", Type: "console"})
	require.NoError(t, err)
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewFileLoggerWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.log")
	log, err := New(config.LogConfig{
		Level:     "info",
		Type:      "file",
		FilePath:  path,
		MaxSizeMB: 1,
	})
	require.NoError(t, err)

	log.Info("started", "pid", 1)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
}

func TestNewFileLoggerRequiresPath(t *testing.T) {
	_, err := New(config.LogConfig{Level: "info", Type: "file"})
	assert.Error(t, err)
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New(config.LogConfig{Level: "info", Type: "syslog"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("anything"))
}
