// Package store provides the calculator's persistence boundary: a narrow
// key-value interface the editor writes through, plus a JSON file
// implementation for the command line binary.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Store is the persistence interface the calculator core calls but does not
// implement. Writes are fire and forget from the editor's perspective; a
// failed write never rolls back in-memory state.
type Store interface {
	LoadStringList(key string) ([]string, error)
	SaveStringList(key string, values []string) error
	LoadFloat(key string) (float64, bool, error)
	SaveFloat(key string, value float64) error
}

// document is the on-disk shape of a FileStore.
type document struct {
	Lists  map[string][]string `json:"lists,omitempty"`
	Floats map[string]float64  `json:"floats,omitempty"`
}

// FileStore is a Store backed by a single JSON file. Each save rewrites the
// whole file. It is not safe for concurrent use.
type FileStore struct {
	path string
	doc  document
}

// Open loads a file store from path, starting empty if the file does not
// exist yet.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, err
	}
	if err := json.Unmarshal(b, &s.doc); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadStringList returns the list stored under key, or nil if there is none.
func (s *FileStore) LoadStringList(key string) ([]string, error) {
	return s.doc.Lists[key], nil
}

// SaveStringList stores a list under key and rewrites the file.
func (s *FileStore) SaveStringList(key string, values []string) error {
	if s.doc.Lists == nil {
		s.doc.Lists = make(map[string][]string)
	}
	if values == nil {
		delete(s.doc.Lists, key)
	} else {
		s.doc.Lists[key] = values
	}
	return s.flush()
}

// LoadFloat returns the value stored under key and whether it was present.
func (s *FileStore) LoadFloat(key string) (float64, bool, error) {
	v, ok := s.doc.Floats[key]
	return v, ok, nil
}

// SaveFloat stores a value under key and rewrites the file.
func (s *FileStore) SaveFloat(key string, value float64) error {
	if s.doc.Floats == nil {
		s.doc.Floats = make(map[string]float64)
	}
	s.doc.Floats[key] = value
	return s.flush()
}

func (s *FileStore) flush() error {
	b, err := json.MarshalIndent(&s.doc, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(b, '\n'), 0o644)
}

var _ Store = (*FileStore)(nil)
