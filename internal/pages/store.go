package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotADirectory is returned when a capture root does not exist on disk
// or is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Store owns a directory of page captures. Captures are written once and
// never modified or deleted here; re-crawling the same URL overwrites the
// capture because the file name is a pure function of the URL.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string {
	return s.root
}

// Save writes one page capture under the store root.
func (s *Store) Save(name string, data []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write capture %s: %w", name, err)
	}
	return nil
}

// Files lists the capture files in the store root, sorted by name.
// Subdirectories are ignored.
func (s *Store) Files() ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, s.root)
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(s.root, entry.Name()))
	}
	return files, nil
}
