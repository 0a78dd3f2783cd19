package kv

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps one pretty-printed JSON file per key under a base
// directory. A missing or unreadable file reads as absent, so a corrupted
// value degrades to an empty collection instead of an error.
type FileStore struct {
	Notifier
	baseDir string
	mu      sync.Mutex
}

// NewFileStore creates a file-backed store rooted at baseDir. The directory
// is created on first write.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// Path returns the file a key is stored in.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

func (s *FileStore) Get(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// Treat a corrupted file like an absent key so one bad write can't
	// wedge the whole store.
	if !json.Valid(data) {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *FileStore) Set(key string, value any) error {
	s.mu.Lock()
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := os.WriteFile(s.Path(key), data, 0644); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	s.Notify(key)
	return nil
}
