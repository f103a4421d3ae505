package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/faithfularchive/arcon/internal/fileutil"
)

const (
	// prefsFilePermissions is the permission mode for the preference file.
	prefsFilePermissions = 0o600

	// prefsDirPermissions is the permission mode for the preference directory.
	prefsDirPermissions = 0o700
)

// FileStore is a file-backed Store holding all keys in one JSON document.
// Writes are atomic so interrupted shutdowns never corrupt the file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store at the given path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fileutil.ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), prefsDirPermissions); err != nil {
		return nil, fmt.Errorf("creating preference directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Get returns the value for key and whether it exists.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Set writes the value for key.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[key] = value
	return s.write(entries)
}

// Delete removes key. Deleting a missing key succeeds.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.write(entries)
}

// read loads the document. A missing file is an empty store; a corrupt
// file is treated the same so stale garbage cannot wedge startup.
func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path is validated at construction
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("reading preference file: %w", err)
	}

	entries := make(map[string]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return make(map[string]string), nil
	}
	return entries, nil
}

// write stores the document atomically.
func (s *FileStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preference file: %w", err)
	}
	return fileutil.WriteAtomic(s.path, data, prefsFilePermissions)
}

// Compile-time interface check
var _ Store = (*FileStore)(nil)
