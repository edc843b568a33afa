package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/aretw0/automata/pkg/domain"
	"github.com/aretw0/automata/pkg/schema"
)

// Store implements ports.DFAStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*schema.Definition
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*schema.Definition),
	}
}

// Save stores a copy of the definition.
func (s *Store) Save(ctx context.Context, key string, def *schema.Definition) error {
	copied := clone(def)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = copied
	return nil
}

// Load returns a copy so callers can't mutate the stored value through the pointer.
func (s *Store) Load(ctx context.Context, key string) (*schema.Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	def, ok := s.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(def), nil
}

// Delete removes the entry.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// List returns the stored keys, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func clone(def *schema.Definition) *schema.Definition {
	out := *def
	out.States = slices.Clone(def.States)
	out.Final = slices.Clone(def.Final)
	out.Transitions = slices.Clone(def.Transitions)
	return &out
}
