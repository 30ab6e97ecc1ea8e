package storage

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/radialmap/pkg/graph"
)

// MemoryStore keeps maps in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	maps map[string]Map
	now  func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{maps: make(map[string]Map), now: time.Now}
}

func (s *MemoryStore) Save(_ context.Context, name string, l graph.Layout) (Map, error) {
	m, err := newMap(name, l, s.now())
	if err != nil {
		return Map{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[m.ID] = m
	return m, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.maps[id]
	if !ok {
		return Map{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.maps[id]; !ok {
		return ErrNotFound
	}
	delete(s.maps, id)
	return nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	s.mu.RLock()
	out := make([]Summary, 0, len(s.maps))
	for _, m := range s.maps {
		out = append(out, m.Summary())
	}
	s.mu.RUnlock()

	slices.SortFunc(out, func(a, b Summary) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Close(context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
