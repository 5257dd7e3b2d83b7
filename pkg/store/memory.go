package store

import (
	"context"
	"sync"

	"github.com/matzehuels/starmap/pkg/graph"
)

// MemoryStore keeps entries in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*Entry)}
}

func (s *MemoryStore) Save(ctx context.Context, doc graph.Document) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &Entry{Document: doc, CreatedAt: now()}
	s.entries[doc.ID] = e
	copied := *e
	return &copied, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, notFound(id)
	}
	copied := *e
	return &copied, nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]Summary, error) {
	s.mu.RLock()
	out := make([]Summary, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.summary())
	}
	s.mu.RUnlock()

	newest(out)
	return out[:min(len(out), listLimit(limit))], nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
