package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"lowercase yes", "yes\n", true},
		{"mixed case Yes", "Yes\n", true},
		{"lowercase n", "n\n", false},
		{"lowercase no", "no\n", false},
		{"empty input", "\n", false},
		{"random text", "maybe\n", false},
		{"y with spaces", "  y  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			result := confirm(strings.NewReader(tt.input), &out, "Test?")
			if result != tt.expected {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, result, tt.expected)
			}
			if !strings.Contains(out.String(), "Test? [y/N]") {
				t.Errorf("prompt = %q", out.String())
			}
		})
	}
}

func TestConfirm_EOF(t *testing.T) {
	if confirm(strings.NewReader(""), io.Discard, "Test?") {
		t.Error("confirm(EOF) = true, want false")
	}
}

func TestConfirm_ErrorReader(t *testing.T) {
	if confirm(&errorReader{}, io.Discard, "Test?") {
		t.Error("confirm(error) = true, want false")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, io.ErrUnexpectedEOF
}

// withLogDir points the clean command at a temp dir holding the given files
func withLogDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("log"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	origGlob, origRemove, origSkip := logGlob, removeLogs, skipConfirm
	logGlob = filepath.Join(dir, "agentchat-*.log")
	removeLogs = func() (int, error) {
		matches, _ := filepath.Glob(logGlob)
		for _, m := range matches {
			if err := os.Remove(m); err != nil {
				return 0, err
			}
		}
		return len(matches), nil
	}
	t.Cleanup(func() { logGlob, removeLogs, skipConfirm = origGlob, origRemove, origSkip })
	return dir
}

func TestRunClean_NothingToClean(t *testing.T) {
	withLogDir(t)

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out); err != nil {
		t.Fatalf("runClean error = %v", err)
	}
	if !strings.Contains(out.String(), "Nothing to clean.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestRunClean_Confirmed(t *testing.T) {
	dir := withLogDir(t, "agentchat-debug.log", "agentchat-old.log", "other.log")

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("y\n"), &out); err != nil {
		t.Fatalf("runClean error = %v", err)
	}
	if !strings.Contains(out.String(), "Removed 2 log file(s).") {
		t.Errorf("output = %q", out.String())
	}

	remaining, _ := filepath.Glob(filepath.Join(dir, "*"))
	if len(remaining) != 1 || filepath.Base(remaining[0]) != "other.log" {
		t.Errorf("remaining = %v", remaining)
	}
}

func TestRunClean_Aborted(t *testing.T) {
	dir := withLogDir(t, "agentchat-debug.log")

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader("n\n"), &out); err != nil {
		t.Fatalf("runClean error = %v", err)
	}
	if !strings.Contains(out.String(), "Aborted.") {
		t.Errorf("output = %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "agentchat-debug.log")); err != nil {
		t.Error("Aborted clean should keep the log file")
	}
}

func TestRunClean_SkipConfirm(t *testing.T) {
	withLogDir(t, "agentchat-debug.log")
	skipConfirm = true

	var out bytes.Buffer
	if err := runCleanWithReader(strings.NewReader(""), &out); err != nil {
		t.Fatalf("runClean error = %v", err)
	}
	if !strings.Contains(out.String(), "Removed 1 log file(s).") {
		t.Errorf("output = %q", out.String())
	}
}
