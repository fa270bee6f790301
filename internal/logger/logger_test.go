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

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}

	return logPath, func() {
		Reset()
	}
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLog_Formatting(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	Log("integer: %d", 123)
	Log("multiple: %s=%d", "count", 5)

	content := readLog(t, logPath)
	if !strings.Contains(content, "integer: 123") {
		t.Errorf("log should contain formatted integer, got %q", content)
	}
	if !strings.Contains(content, "multiple: count=5") {
		t.Errorf("log should contain formatted pair, got %q", content)
	}
}

func TestDebug_FilteredAtInfoLevel(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(false)
	Debug("hidden-debug-marker")
	Info("visible-info-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(content, "visible-info-marker") {
		t.Error("info message should be written at info level")
	}
}

func TestLevels_Written(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	SetDebug(true)
	Debug("d-marker")
	Warn("w-marker")
	Error("e-marker")

	content := readLog(t, logPath)
	for _, want := range []string{"level=DEBUG", "level=WARN", "level=ERROR", "d-marker", "w-marker", "e-marker"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestComponentLogger_AddsAttribute(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	ComponentLogger("chat").Info("component message")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=chat") {
		t.Errorf("log should contain component attribute, got %q", content)
	}
}

func TestWithRequest_AddsAttribute(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	WithRequest("req-42").Info("request message")

	content := readLog(t, logPath)
	if !strings.Contains(content, "requestID=req-42") {
		t.Errorf("log should contain request attribute, got %q", content)
	}
}

func TestPath(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	if got := Path(); got != logPath {
		t.Errorf("Path() = %q, want %q", got, logPath)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath, cleanup := setupTestLogger(t)
	defer cleanup()

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if got := Path(); got != logPath {
		t.Errorf("Path() after second Init = %q, want %q", got, logPath)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing-dir", "x.log"))
	if err == nil {
		t.Fatal("Init should fail for a path in a missing directory")
	}
}

func TestLog_Concurrent(t *testing.T) {
	_, cleanup := setupTestLogger(t)
	defer cleanup()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Log("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	Reset()
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()

	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")

	content1 := readLog(t, logPath1)
	if !strings.Contains(content1, "message to log1") {
		t.Error("log1 should contain 'message to log1'")
	}
	if strings.Contains(content1, "message to log2") {
		t.Error("log1 should NOT contain 'message to log2'")
	}

	content2 := readLog(t, logPath2)
	if !strings.Contains(content2, "message to log2") {
		t.Error("log2 should contain 'message to log2'")
	}

	Reset()
}

func TestRemoveFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.log")
	b := filepath.Join(dir, "b.log")
	for _, p := range []string{a, b} {
		if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	n, err := removeFiles([]string{a, b, filepath.Join(dir, "missing.log")})
	if err != nil {
		t.Fatalf("removeFiles returned error: %v", err)
	}
	if n != 2 {
		t.Errorf("removeFiles removed %d files, want 2", n)
	}
}
