package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	fallback := 2 * time.Minute

	if got := ParseDuration("30s", fallback); got != 30*time.Second {
		t.Errorf("got %v", got)
	}
	if got := ParseDuration("", fallback); got != fallback {
		t.Errorf("empty input should fall back, got %v", got)
	}
	if got := ParseDuration("not-a-duration", fallback); got != fallback {
		t.Errorf("invalid input should fall back, got %v", got)
	}
}

func TestUploadManager_Paths(t *testing.T) {
	um := NewUploadManager("data")

	path := um.UploadPath("abc-123")
	if filepath.Dir(path) != "data" {
		t.Errorf("path should live under the base dir: %q", path)
	}
	if !strings.HasSuffix(path, "financial_document_abc-123.pdf") {
		t.Errorf("unexpected file name: %q", path)
	}
}

func TestUploadManager_EnsureDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	um := NewUploadManager(base)

	if err := um.EnsureDir(); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	if _, err := os.Stat(base); err != nil {
		t.Errorf("base dir should exist: %v", err)
	}
	// idempotent
	if err := um.EnsureDir(); err != nil {
		t.Errorf("ensure dir should be repeatable: %v", err)
	}
}

func TestUploadManager_Remove(t *testing.T) {
	base := t.TempDir()
	um := NewUploadManager(base)

	path := um.UploadPath("to-delete")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	um.Remove(path)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file should be gone")
	}

	// Removing a missing file is a no-op, never a failure.
	um.Remove(filepath.Join(base, "never-existed.pdf"))
}
