// Package store provides the in-memory, concurrent-safe collections backing
// the ledger: one keyed store per entity kind, plus the locking guard that
// serializes per-account mutations and bulk reloads. Data is volatile and
// lost on process exit.
package store

import (
	"sync"

	"github.com/google/uuid"

	"tigerbank/internal/core"
)

// Accounts is a keyed collection of bank accounts. Entities are copied on
// save and on read, so a stored account only ever changes through Save and
// readers never observe a half-applied mutation.
type Accounts struct {
	mu    sync.RWMutex
	items map[uuid.UUID]*core.BankAccount
}

func NewAccounts() *Accounts {
	return &Accounts{items: make(map[uuid.UUID]*core.BankAccount)}
}

// Save inserts or overwrites an account and returns the stored copy.
func (s *Accounts) Save(a *core.BankAccount) *core.BankAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[a.ID()] = a.Clone()
	return a.Clone()
}

// ByID looks up an account by id.
func (s *Accounts) ByID(id uuid.UUID) (*core.BankAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[id]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

// All returns every account, in unspecified order.
func (s *Accounts) All() []*core.BankAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.BankAccount, 0, len(s.items))
	for _, a := range s.items {
		out = append(out, a.Clone())
	}
	return out
}

// Delete removes an account. Deleting an absent id is a no-op.
func (s *Accounts) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

// ReplaceAll swaps the whole collection for the given accounts.
func (s *Accounts) ReplaceAll(accounts []*core.BankAccount) {
	next := make(map[uuid.UUID]*core.BankAccount, len(accounts))
	for _, a := range accounts {
		next[a.ID()] = a.Clone()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = next
}

// Len reports the number of stored accounts.
func (s *Accounts) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
