package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
)

func mustAccount(t *testing.T, name string) *core.BankAccount {
	t.Helper()
	a, err := core.NewBankAccount(name)
	if err != nil {
		t.Fatalf("new account: %v", err)
	}
	return a
}

func mustOperation(t *testing.T, accountID uuid.UUID, amount string, date core.Date) *core.Operation {
	t.Helper()
	op, err := core.NewOperation(core.Income, accountID, decimal.RequireFromString(amount), date, "", uuid.Nil)
	if err != nil {
		t.Fatalf("new operation: %v", err)
	}
	return op
}

func TestAccountsSaveByIDDelete(t *testing.T) {
	s := NewAccounts()
	a := mustAccount(t, "Main")

	s.Save(a)
	got, ok := s.ByID(a.ID())
	if !ok {
		t.Fatalf("saved account not found")
	}
	if got.Name() != "Main" {
		t.Fatalf("wrong account: %q", got.Name())
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}

	if _, ok := s.ByID(uuid.New()); ok {
		t.Fatalf("lookup of absent id succeeded")
	}

	s.Delete(a.ID())
	if _, ok := s.ByID(a.ID()); ok {
		t.Fatalf("deleted account still present")
	}
	s.Delete(a.ID()) // absent delete is a no-op
}

func TestAccountsCloneIsolation(t *testing.T) {
	s := NewAccounts()
	a := mustAccount(t, "Main")
	s.Save(a)

	// Mutating the caller's copy must not change the stored one.
	if err := a.Deposit(decimal.RequireFromString("100.00")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	stored, _ := s.ByID(a.ID())
	if !stored.Balance().IsZero() {
		t.Fatalf("store observed an unsaved mutation: %s", stored.Balance())
	}

	// Mutating a read result must not change the stored one either.
	read, _ := s.ByID(a.ID())
	if err := read.Rename("Changed"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	stored, _ = s.ByID(a.ID())
	if stored.Name() != "Main" {
		t.Fatalf("store observed a mutation on a read copy: %q", stored.Name())
	}
}

func TestAccountsReplaceAll(t *testing.T) {
	s := NewAccounts()
	s.Save(mustAccount(t, "Old"))

	next := []*core.BankAccount{mustAccount(t, "A"), mustAccount(t, "B")}
	s.ReplaceAll(next)
	if s.Len() != 2 {
		t.Fatalf("len after replace = %d", s.Len())
	}
	for _, a := range next {
		if _, ok := s.ByID(a.ID()); !ok {
			t.Fatalf("replacement account %s missing", a.ID())
		}
	}
}

func TestCategoriesStore(t *testing.T) {
	s := NewCategories()
	c, err := core.NewCategory("Salary", core.CategoryIncome)
	if err != nil {
		t.Fatalf("new category: %v", err)
	}
	s.Save(c)

	got, ok := s.ByID(c.ID())
	if !ok || got.Name() != "Salary" {
		t.Fatalf("category lookup failed")
	}
	if len(s.All()) != 1 {
		t.Fatalf("All() = %d items", len(s.All()))
	}

	s.ReplaceAll(nil)
	if s.Len() != 0 {
		t.Fatalf("replace with nil kept %d items", s.Len())
	}
}

func TestOperationsByAccount(t *testing.T) {
	s := NewOperations()
	mine := uuid.New()
	other := uuid.New()

	s.Save(mustOperation(t, mine, "1.00", core.Today()))
	s.Save(mustOperation(t, mine, "2.00", core.Today()))
	s.Save(mustOperation(t, other, "3.00", core.Today()))

	ops := s.ByAccount(mine)
	if len(ops) != 2 {
		t.Fatalf("ByAccount returned %d operations", len(ops))
	}
	for _, op := range ops {
		if op.AccountID() != mine {
			t.Fatalf("foreign operation in result")
		}
	}
}

func TestOperationsByPeriodHalfOpen(t *testing.T) {
	s := NewOperations()
	accountID := uuid.New()
	today := core.Today()

	onFrom := mustOperation(t, accountID, "1.00", today.AddDays(-7))
	inside := mustOperation(t, accountID, "2.00", today.AddDays(-3))
	onTo := mustOperation(t, accountID, "3.00", today)
	before := mustOperation(t, accountID, "4.00", today.AddDays(-8))
	s.Save(onFrom)
	s.Save(inside)
	s.Save(onTo)
	s.Save(before)

	got := s.ByPeriod(today.AddDays(-7), today)
	if len(got) != 2 {
		t.Fatalf("ByPeriod returned %d operations, want 2", len(got))
	}
	ids := map[uuid.UUID]bool{}
	for _, op := range got {
		ids[op.ID()] = true
	}
	if !ids[onFrom.ID()] {
		t.Fatalf("from boundary must be included")
	}
	if !ids[inside.ID()] {
		t.Fatalf("inner date missing")
	}
	if ids[onTo.ID()] {
		t.Fatalf("to boundary must be excluded")
	}
	if ids[before.ID()] {
		t.Fatalf("date before the interval included")
	}
}

func TestOperationsByCategory(t *testing.T) {
	s := NewOperations()
	accountID := uuid.New()
	category, _ := core.NewCategory("Cafe", core.CategoryExpense)

	linked, err := core.NewOperation(core.Expense, accountID,
		decimal.RequireFromString("5.00"), core.Today(), "", category.ID())
	if err != nil {
		t.Fatalf("new operation: %v", err)
	}
	s.Save(linked)
	s.Save(mustOperation(t, accountID, "1.00", core.Today()))

	got := s.ByCategory(category.ID())
	if len(got) != 1 || got[0].ID() != linked.ID() {
		t.Fatalf("ByCategory returned wrong set")
	}
}
