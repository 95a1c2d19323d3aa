package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a file-per-key StateStore rooted at a state directory. Each
// scope maps to a subdirectory, each key to one file inside it. Entries
// survive process restarts, which is what the cycling nodes rely on.
//
// Scope and key names are restricted to a filesystem-safe character set so a
// hostile key can never escape the root directory.
type FileStore struct {
	root string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// on first write, not here.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Root returns the state directory this store writes under.
func (s *FileStore) Root() string { return s.root }

func (s *FileStore) path(scope, key string) (string, error) {
	if err := checkName(scope); err != nil {
		return "", err
	}
	if err := checkName(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, scope, key), nil
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty name")
	}
	if name != filepath.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid name %q", name)
	}
	return nil
}

// Save writes the bytes for the given scope and key, creating the scope
// directory as needed.
func (s *FileStore) Save(scope, key string, data []byte) error {
	p, err := s.path(scope, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create scope dir: %w", err)
	}
	return os.WriteFile(p, data, 0o644)
}

// Get returns the stored bytes or ErrNotFound.
func (s *FileStore) Get(scope, key string) ([]byte, error) {
	p, err := s.path(scope, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// List returns the keys stored for the scope.
func (s *FileStore) List(scope string) ([]string, error) {
	if err := checkName(scope); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(s.root, scope))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			keys = append(keys, e.Name())
		}
	}
	return keys, nil
}

// Delete removes the entry if present or returns ErrNotFound.
func (s *FileStore) Delete(scope, key string) error {
	p, err := s.path(scope, key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
