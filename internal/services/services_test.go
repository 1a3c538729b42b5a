package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
	"tigerbank/internal/log"
	"tigerbank/internal/store"
)

// testLedger wires the full service graph against fresh in-memory stores.
type testLedger struct {
	accounts   *store.Accounts
	categories *store.Categories
	operations *store.Operations
	guard      *store.Guard

	ops       *OperationService
	accts     *AccountService
	analytics *AnalyticsService
	data      *DataService
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()
	logger := log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})

	l := &testLedger{
		accounts:   store.NewAccounts(),
		categories: store.NewCategories(),
		operations: store.NewOperations(),
		guard:      store.NewGuard(),
	}
	recalc := NewBalanceRecalculator(l.accounts, l.operations)
	l.ops = NewOperationService(l.accounts, l.categories, l.operations, recalc, l.guard, logger)
	l.accts = NewAccountService(l.accounts, l.categories, l.operations, l.guard, logger)
	l.analytics = NewAnalyticsService(l.operations, l.categories, l.guard)
	l.data = NewDataService(l.accounts, l.categories, l.operations, l.guard, logger)
	return l
}

func (l *testLedger) openAccount(t *testing.T, name string) *core.BankAccount {
	t.Helper()
	a, err := l.accts.OpenAccount(name)
	if err != nil {
		t.Fatalf("open account: %v", err)
	}
	return a
}

func (l *testLedger) createCategory(t *testing.T, name string, catType core.CategoryType) *core.Category {
	t.Helper()
	c, err := l.accts.CreateCategory(name, catType)
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	return c
}

func (l *testLedger) addOperation(t *testing.T, opType core.OperationType, accountID uuid.UUID,
	amount string, date core.Date, categoryID uuid.UUID) *core.Operation {
	t.Helper()
	op, err := core.NewOperation(opType, accountID, decimal.RequireFromString(amount), date, "", categoryID)
	if err != nil {
		t.Fatalf("build operation: %v", err)
	}
	saved, err := l.ops.AddOperation(op)
	if err != nil {
		t.Fatalf("add operation: %v", err)
	}
	return saved
}

func (l *testLedger) balance(t *testing.T, accountID uuid.UUID) string {
	t.Helper()
	b, err := l.ops.AccountBalance(accountID)
	if err != nil {
		t.Fatalf("account balance: %v", err)
	}
	return b.StringFixed(2)
}
