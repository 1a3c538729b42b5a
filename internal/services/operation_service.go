package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
	"tigerbank/internal/log"
	"tigerbank/internal/store"
)

// OperationService handles operation creation and deletion. Every mutation
// runs under the owning account's lock so the operation write and the
// balance recalculation never interleave with another mutation on the same
// account.
type OperationService struct {
	accounts   *store.Accounts
	categories *store.Categories
	operations *store.Operations
	recalc     *BalanceRecalculator
	guard      *store.Guard
	logger     *log.Logger
}

func NewOperationService(
	accounts *store.Accounts,
	categories *store.Categories,
	operations *store.Operations,
	recalc *BalanceRecalculator,
	guard *store.Guard,
	logger *log.Logger,
) *OperationService {
	return &OperationService{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		recalc:     recalc,
		guard:      guard,
		logger:     logger.WithComponent("operations"),
	}
}

// AddOperation validates referential integrity, persists the operation and
// recalculates the owning account's balance. The category compatibility
// check runs here even though Operation never stores an incompatible
// pairing: the link is re-validated against the category as currently
// stored, not as it was when the operation was built.
func (s *OperationService) AddOperation(op *core.Operation) (*core.Operation, error) {
	release := s.guard.LockAccount(op.AccountID())
	defer release()

	if _, ok := s.accounts.ByID(op.AccountID()); !ok {
		return nil, fmt.Errorf("%w: account %s", core.ErrNotFound, op.AccountID())
	}
	if op.HasCategory() {
		category, ok := s.categories.ByID(op.CategoryID())
		if !ok {
			return nil, fmt.Errorf("%w: category %s", core.ErrNotFound, op.CategoryID())
		}
		if err := category.ValidateOperationCompatibility(op.Type()); err != nil {
			return nil, err
		}
	}

	saved := s.operations.Save(op)
	if err := s.recalc.Recalculate(op.AccountID()); err != nil {
		// Undo the write so a failed recalculation leaves no partial state.
		s.operations.Delete(op.ID())
		return nil, fmt.Errorf("add operation %s: %w", op.ID(), err)
	}

	s.logger.Info("operation added",
		"id", saved.ID(),
		"account", saved.AccountID(),
		"type", saved.Type(),
		"amount", saved.Amount().StringFixed(2))
	return saved, nil
}

// DeleteOperation removes an operation and recalculates the former owning
// account's balance.
func (s *OperationService) DeleteOperation(id uuid.UUID) error {
	op, ok := s.operations.ByID(id)
	if !ok {
		return fmt.Errorf("%w: operation %s", core.ErrNotFound, id)
	}

	release := s.guard.LockAccount(op.AccountID())
	defer release()

	// Re-check under the lock; a concurrent delete may have won.
	op, ok = s.operations.ByID(id)
	if !ok {
		return fmt.Errorf("%w: operation %s", core.ErrNotFound, id)
	}

	s.operations.Delete(id)
	if err := s.recalc.Recalculate(op.AccountID()); err != nil {
		// Put the operation back so a failed recalculation leaves no
		// partial state.
		s.operations.Save(op)
		return fmt.Errorf("delete operation %s: %w", id, err)
	}

	s.logger.Info("operation deleted", "id", id, "account", op.AccountID())
	return nil
}

// AccountOperations returns all operations of one account.
func (s *OperationService) AccountOperations(accountID uuid.UUID) []*core.Operation {
	s.guard.RLock()
	defer s.guard.RUnlock()
	return s.operations.ByAccount(accountID)
}

// AccountBalance returns the stored balance of one account.
func (s *OperationService) AccountBalance(accountID uuid.UUID) (decimal.Decimal, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()
	account, ok := s.accounts.ByID(accountID)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: account %s", core.ErrNotFound, accountID)
	}
	return account.Balance(), nil
}
