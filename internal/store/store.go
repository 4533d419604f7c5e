package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/cutline/internal/timeline"
)

// ErrNotFound indicates no saved project exists for the ID.
var ErrNotFound = errors.New("project not found")

// Store is the persistence contract the engine's collaborators consume.
// The engine treats it as an opaque asynchronous service; implementations
// may back it with a file system, key-value store, or database.
type Store interface {
	Load(projectID string) (*timeline.Document, error)
	Save(projectID string, doc *timeline.Document) error
}

// FileStore persists each project as <id>.json in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the on-disk path for a project ID.
func (s *FileStore) Path(projectID string) string {
	return filepath.Join(s.dir, projectID+".json")
}

// Load reads and decodes a project. Fails with ErrNotFound if no file
// exists.
func (s *FileStore) Load(projectID string) (*timeline.Document, error) {
	data, err := os.ReadFile(s.Path(projectID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading project %s: %w", projectID, err)
	}
	return DecodeDocument(data)
}

// Save encodes and writes a project atomically: the document is written
// to a temp file and renamed over the target so a crash mid-write never
// leaves a truncated project file.
func (s *FileStore) Save(projectID string, doc *timeline.Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	tmp := s.Path(projectID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing project %s: %w", projectID, err)
	}
	if err := os.Rename(tmp, s.Path(projectID)); err != nil {
		return fmt.Errorf("writing project %s: %w", projectID, err)
	}
	return nil
}
