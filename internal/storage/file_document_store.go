// Package storage provides the filesystem-backed document store for
// rendered quiz pages.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"quiz-page/internal/domain"

	"github.com/spf13/afero"
)

// FileDocumentStore implements domain.DocumentStore on an afero filesystem.
// Tests use afero.NewMemMapFs; the api binary uses the OS filesystem.
type FileDocumentStore struct {
	fs afero.Fs
}

// NewFileDocumentStore creates a document store over fs.
func NewFileDocumentStore(fs afero.Fs) domain.DocumentStore {
	return &FileDocumentStore{fs: fs}
}

// Write stores content at path, creating parent directories as needed.
func (s *FileDocumentStore) Write(path string, content string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

// Read returns the document at path, or domain.ErrDocumentNotFound when the
// file no longer exists.
func (s *FileDocumentStore) Read(path string) (string, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return string(content), nil
}
