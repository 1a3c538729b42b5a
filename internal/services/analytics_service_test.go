package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"tigerbank/internal/core"
)

func TestNetIncome(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main")
	today := core.Today()

	l.addOperation(t, core.Income, account.ID(), "1000.00", today.AddDays(-5), uuid.Nil)
	l.addOperation(t, core.Expense, account.ID(), "300.25", today.AddDays(-3), uuid.Nil)
	l.addOperation(t, core.Income, account.ID(), "50.00", today, uuid.Nil)

	// Half-open window: today's income is outside [today-7, today).
	got := l.analytics.NetIncome(today.AddDays(-7), today)
	if got.StringFixed(2) != "699.75" {
		t.Fatalf("net income = %s, want 699.75", got.StringFixed(2))
	}

	// Extending the window one day past today picks it up.
	got = l.analytics.NetIncome(today.AddDays(-7), today.AddDays(1))
	if got.StringFixed(2) != "749.75" {
		t.Fatalf("net income = %s, want 749.75", got.StringFixed(2))
	}

	// Expenses can outweigh income; net income may be negative.
	got = l.analytics.NetIncome(today.AddDays(-4), today.AddDays(-2))
	if got.StringFixed(2) != "-300.25" {
		t.Fatalf("net income = %s, want -300.25", got.StringFixed(2))
	}
}

func TestGroupByCategory(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main")
	cafe := l.createCategory(t, "Cafe", core.CategoryExpense)
	health := l.createCategory(t, "Health", core.CategoryExpense)
	salary := l.createCategory(t, "Salary", core.CategoryIncome)
	today := core.Today()

	l.addOperation(t, core.Expense, account.ID(), "10.00", today.AddDays(-2), cafe.ID())
	l.addOperation(t, core.Expense, account.ID(), "15.50", today.AddDays(-1), cafe.ID())
	l.addOperation(t, core.Expense, account.ID(), "99.99", today.AddDays(-1), health.ID())
	l.addOperation(t, core.Income, account.ID(), "500.00", today.AddDays(-1), salary.ID())
	// Uncategorized operations never appear in the grouping.
	l.addOperation(t, core.Expense, account.ID(), "7.00", today.AddDays(-1), uuid.Nil)

	totals, err := l.analytics.GroupByCategory(today.AddDays(-7), today.AddDays(1), core.Expense)
	if err != nil {
		t.Fatalf("group by category: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("grouped %d categories, want 2", len(totals))
	}
	if got := totals[cafe.ID()].Total.StringFixed(2); got != "25.50" {
		t.Fatalf("cafe total = %s, want 25.50", got)
	}
	if got := totals[health.ID()].Total.StringFixed(2); got != "99.99" {
		t.Fatalf("health total = %s, want 99.99", got)
	}
	if totals[cafe.ID()].Category.Name() != "Cafe" {
		t.Fatalf("category not resolved alongside the total")
	}
	if _, ok := totals[salary.ID()]; ok {
		t.Fatalf("income category in an expense grouping")
	}
}

func TestGroupByCategoryDanglingReference(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main")
	cafe := l.createCategory(t, "Cafe", core.CategoryExpense)
	l.addOperation(t, core.Expense, account.ID(), "10.00", core.Today(), cafe.ID())

	// Remove the category behind the service's back; the grouping must
	// surface the broken reference instead of skipping it.
	l.categories.Delete(cafe.ID())

	_, err := l.analytics.GroupByCategory(core.Today().AddDays(-1), core.Today().AddDays(1), core.Expense)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
