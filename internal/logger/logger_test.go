package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
// Returns the path to the temp file and a cleanup function.
func setupTestLogger(t *testing.T) (string, func()) {
	t.Helper()
	Reset()

	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func TestLogging_DoesNotPanic(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	Debug("debug %d", 1)
	Info("info %s", "msg")
	Warn("warn")
	Error("error: %v", os.ErrNotExist)
}

func TestInfo_WritesToFile(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	Info("page opened id=%s", "abc123")
	Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "page opened id=abc123") {
		t.Errorf("log file missing message, got:\n%s", data)
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(false)
	Debug("should not appear")
	Close()

	data, _ := os.ReadFile(logPath)
	if strings.Contains(string(data), "should not appear") {
		t.Error("debug message written at info level")
	}
}

func TestDebug_EnabledWithSetDebug(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	Debug("verbose detail")
	Close()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), "verbose detail") {
		t.Error("debug message missing with debug enabled")
	}
}

func TestWithComponent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithComponent("nav").Info("navigated", "pageID", "p1")
	Close()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), "component=nav") {
		t.Errorf("component attribute missing, got:\n%s", data)
	}
}

func TestInit_Idempotent(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	// Second Init with a different path should be a no-op.
	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init errored: %v", err)
	}
	Info("after second init")
	Close()

	data, _ := os.ReadFile(logPath)
	if !strings.Contains(string(data), "after second init") {
		t.Error("logger switched files on repeated Init")
	}
}
