// Package services orchestrates the ledger: operation mutations with
// referential-integrity checks, authoritative balance recalculation,
// read-only analytics, account/category management, and bulk export/import.
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
	"tigerbank/internal/store"
)

// BalanceRecalculator derives an account's balance by replaying its full
// operation history. It is the single writer of account balances outside
// construction: a full recompute after every mutation, so the balance can
// never drift from the operation log.
type BalanceRecalculator struct {
	accounts   *store.Accounts
	operations *store.Operations
}

func NewBalanceRecalculator(accounts *store.Accounts, operations *store.Operations) *BalanceRecalculator {
	return &BalanceRecalculator{accounts: accounts, operations: operations}
}

// Recalculate sums the signed amounts of all the account's operations and
// publishes the result through SetBalanceUnsafe. Addition at two decimals is
// commutative, so the unspecified store order does not affect the result.
func (r *BalanceRecalculator) Recalculate(accountID uuid.UUID) error {
	account, ok := r.accounts.ByID(accountID)
	if !ok {
		return fmt.Errorf("%w: account %s", core.ErrNotFound, accountID)
	}

	total := decimal.Zero
	for _, op := range r.operations.ByAccount(accountID) {
		total = total.Add(op.AmountWithSign())
	}

	if err := account.SetBalanceUnsafe(total); err != nil {
		return fmt.Errorf("recalculate account %s: %w", accountID, err)
	}
	r.accounts.Save(account)
	return nil
}
