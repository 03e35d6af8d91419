package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"

	"lifegrid/internal/config"
)

func TestNewParsesLevel(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "warn", Format: "console"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("info should be disabled at warn level")
	}
	if !log.Core().Enabled(zapcore.WarnLevel) {
		t.Fatal("warn should be enabled")
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	log, err := New(config.LoggingConfig{Level: "loud", Format: "json"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) || !log.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("unknown level should fall back to info")
	}
}

func TestNewFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.log")
	log, err := NewFile(config.LoggingConfig{Level: "debug"}, path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Debug("hello")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("expected json entry, got %q", data)
	}
}

func TestNewFileEmptyPathDiscards(t *testing.T) {
	log, err := NewFile(config.LoggingConfig{}, "")
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("empty path should produce a no-op logger")
	}
}
