package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rosterdeck.log")
	logger, closeLog := New(path)

	logger.Info("hello", "component", "test")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file %q does not contain message", string(data))
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	logger, closeLog := New("")
	defer closeLog()

	// Must not panic or write anywhere.
	logger.Error("dropped")
}
