package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// UploadManager handles transient upload storage: every request gets a
// uniquely named file under the base directory, which must be gone again by
// the time the request finishes.
type UploadManager struct {
	BaseDir string
}

// NewUploadManager creates an upload manager rooted at baseDir.
func NewUploadManager(baseDir string) *UploadManager {
	return &UploadManager{BaseDir: baseDir}
}

// EnsureDir creates the base upload directory if it doesn't exist.
func (um *UploadManager) EnsureDir() error {
	if err := os.MkdirAll(um.BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// UploadPath builds the transient file path for one request ID.
func (um *UploadManager) UploadPath(id string) string {
	return filepath.Join(um.BaseDir, fmt.Sprintf("financial_document_%s.pdf", id))
}

// Remove deletes a transient upload, best effort. Missing files and deletion
// failures are both swallowed: cleanup must never fail a request.
func (um *UploadManager) Remove(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = os.Remove(path)
}
