package store

import (
	"sync"

	"github.com/google/uuid"
)

// Guard is the ledger's locking spine. The individual stores are safe for
// single-key access on their own, but "write an operation, then recalculate
// the account's balance" spans two stores and must not interleave for the
// same account, and a bulk reload must never expose a half-cleared dataset.
//
// Normal traffic holds the shared side of the global lock; a bulk reload or
// snapshot holds the exclusive side. Mutations on one account additionally
// hold that account's mutex.
type Guard struct {
	global sync.RWMutex

	mu       sync.Mutex
	accounts map[uuid.UUID]*accountLock
}

// accountLock is refcounted so the registry holds entries only while some
// goroutine holds or waits for them, instead of growing by one mutex per
// account ever touched.
type accountLock struct {
	sync.Mutex
	refs int
}

func NewGuard() *Guard {
	return &Guard{accounts: make(map[uuid.UUID]*accountLock)}
}

// LockAccount acquires the shared global lock plus the exclusive lock for
// one account. The returned release function undoes both.
func (g *Guard) LockAccount(accountID uuid.UUID) (release func()) {
	g.global.RLock()
	l := g.acquireAccountLock(accountID)
	l.Lock()
	return func() {
		l.Unlock()
		g.releaseAccountLock(accountID, l)
		g.global.RUnlock()
	}
}

// RLock takes the shared global lock for plain reads.
func (g *Guard) RLock() { g.global.RLock() }

// RUnlock releases the shared global lock.
func (g *Guard) RUnlock() { g.global.RUnlock() }

// Lock takes the exclusive global lock for bulk reloads and snapshots,
// excluding every concurrent read and per-account mutation.
func (g *Guard) Lock() { g.global.Lock() }

// Unlock releases the exclusive global lock.
func (g *Guard) Unlock() { g.global.Unlock() }

func (g *Guard) acquireAccountLock(accountID uuid.UUID) *accountLock {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.accounts[accountID]
	if !ok {
		l = &accountLock{}
		g.accounts[accountID] = l
	}
	l.refs++
	return l
}

// releaseAccountLock drops the caller's reference and removes the registry
// entry once nobody holds or waits for it. Entries are never replaced while
// referenced, so waiters and the map always agree on the same mutex.
func (g *Guard) releaseAccountLock(accountID uuid.UUID, l *accountLock) {
	g.mu.Lock()
	defer g.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(g.accounts, accountID)
	}
}
