package domain

import "errors"

// ErrDocumentNotFound is returned by DocumentStore when a path has no document.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentStore persists rendered HTML documents. Paths are caller-chosen
// and must stay stable for later retrieval.
type DocumentStore interface {
	Write(path string, content string) error

	// Read returns the document at path, or ErrDocumentNotFound.
	Read(path string) (string, error)
}
