package store

import (
	"sync"

	"github.com/google/uuid"

	"tigerbank/internal/core"
)

// Categories is a keyed collection of operation categories.
type Categories struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*core.Category
}

func NewCategories() *Categories {
	return &Categories{items: make(map[uuid.UUID]*core.Category)}
}

// Save inserts or overwrites a category and returns the stored copy.
func (s *Categories) Save(c *core.Category) *core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[c.ID()] = c.Clone()
	return c.Clone()
}

// ByID looks up a category by id.
func (s *Categories) ByID(id uuid.UUID) (*core.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

// All returns every category, in unspecified order.
func (s *Categories) All() []*core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Category, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c.Clone())
	}
	return out
}

// Delete removes a category. Deleting an absent id is a no-op.
func (s *Categories) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// ReplaceAll swaps the whole collection for the given categories.
func (s *Categories) ReplaceAll(categories []*core.Category) {
	next := make(map[uuid.UUID]*core.Category, len(categories))
	for _, c := range categories {
		next[c.ID()] = c.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
}

// Len reports the number of stored categories.
func (s *Categories) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
