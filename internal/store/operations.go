package store

import (
	"sync"

	"github.com/google/uuid"

	"tigerbank/internal/core"
)

// Operations is a keyed collection of ledger operations with account and
// period filters.
type Operations struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*core.Operation
}

func NewOperations() *Operations {
	return &Operations{items: make(map[uuid.UUID]*core.Operation)}
}

// Save inserts or overwrites an operation and returns the stored copy.
func (s *Operations) Save(op *core.Operation) *core.Operation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[op.ID()] = op.Clone()
	return op.Clone()
}

// ByID looks up an operation by id.
func (s *Operations) ByID(id uuid.UUID) (*core.Operation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return op.Clone(), true
}

// All returns every operation, in unspecified order.
func (s *Operations) All() []*core.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Operation, 0, len(s.items))
	for _, op := range s.items {
		out = append(out, op.Clone())
	}
	return out
}

// Delete removes an operation. Deleting an absent id is a no-op.
func (s *Operations) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// ByAccount returns the operations belonging to one account.
func (s *Operations) ByAccount(accountID uuid.UUID) []*core.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Operation
	for _, op := range s.items {
		if op.AccountID() == accountID {
			out = append(out, op.Clone())
		}
	}
	return out
}

// ByCategory returns the operations linked to one category.
func (s *Operations) ByCategory(categoryID uuid.UUID) []*core.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Operation
	for _, op := range s.items {
		if op.CategoryID() == categoryID {
			out = append(out, op.Clone())
		}
	}
	return out
}

// ByPeriod returns the operations dated within the half-open interval
// [from, to): from is included, to is excluded.
func (s *Operations) ByPeriod(from, to core.Date) []*core.Operation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*core.Operation
	for _, op := range s.items {
		d := op.Date()
		if !d.Before(from) && d.Before(to) {
			out = append(out, op.Clone())
		}
	}
	return out
}

// ReplaceAll swaps the whole collection for the given operations.
func (s *Operations) ReplaceAll(operations []*core.Operation) {
	next := make(map[uuid.UUID]*core.Operation, len(operations))
	for _, op := range operations {
		next[op.ID()] = op.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
}

// Len reports the number of stored operations.
func (s *Operations) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
