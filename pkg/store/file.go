package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/starmap/pkg/errors"
	"github.com/matzehuels/starmap/pkg/graph"
)

// FileStore keeps one JSON file per entry in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, it defaults to ~/.local/share/starmap/galaxies.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "starmap", "galaxies")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// entryPath only accepts UUIDs so IDs cannot escape the directory.
func (s *FileStore) entryPath(id string) (string, error) {
	if err := uuid.Validate(id); err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid galaxy id %q", id)
	}
	return filepath.Join(s.baseDir, id+".json"), nil
}

func (s *FileStore) Save(ctx context.Context, doc graph.Document) (*Entry, error) {
	path, err := s.entryPath(doc.ID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &Entry{Document: doc, CreatedAt: now()}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal entry: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("write entry: %w", err)
	}
	return e, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Entry, error) {
	path, err := s.entryPath(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := readEntry(path)
	if os.IsNotExist(err) {
		return nil, notFound(id)
	}
	return e, err
}

func (s *FileStore) List(ctx context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var out []Summary
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".json" {
			continue
		}
		e, err := readEntry(filepath.Join(s.baseDir, f.Name()))
		if err != nil {
			continue
		}
		out = append(out, e.summary())
	}
	newest(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *FileStore) Close(context.Context) error { return nil }

// Path returns the archive directory.
func (s *FileStore) Path() string {
	return s.baseDir
}

func readEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("parse entry: %w", err)
	}
	return &e, nil
}

var _ Store = (*FileStore)(nil)
