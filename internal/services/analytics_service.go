package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
	"tigerbank/internal/store"
)

// AnalyticsService aggregates operations over a period. All methods are
// pure reads and filter on the half-open interval [from, to).
type AnalyticsService struct {
	operations *store.Operations
	categories *store.Categories
	guard      *store.Guard
}

func NewAnalyticsService(operations *store.Operations, categories *store.Categories, guard *store.Guard) *AnalyticsService {
	return &AnalyticsService{operations: operations, categories: categories, guard: guard}
}

// CategoryTotal pairs a resolved category with the summed amount of its
// operations.
type CategoryTotal struct {
	Category *core.Category
	Total    decimal.Decimal
}

// NetIncome is the sum of income amounts minus the sum of expense amounts
// for operations dated within [from, to).
func (s *AnalyticsService) NetIncome(from, to core.Date) decimal.Decimal {
	s.guard.RLock()
	defer s.guard.RUnlock()

	income := decimal.Zero
	expense := decimal.Zero
	for _, op := range s.operations.ByPeriod(from, to) {
		switch op.Type() {
		case core.Income:
			income = income.Add(op.Amount())
		case core.Expense:
			expense = expense.Add(op.Amount())
		}
	}
	return income.Sub(expense)
}

// GroupByCategory sums amounts per category for operations of the given type
// dated within [from, to). Uncategorized operations are skipped. A stored
// category id that no longer resolves is a referential-integrity violation
// and fails the whole query.
func (s *AnalyticsService) GroupByCategory(from, to core.Date, opType core.OperationType) (map[uuid.UUID]CategoryTotal, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	totals := make(map[uuid.UUID]CategoryTotal)
	for _, op := range s.operations.ByPeriod(from, to) {
		if op.Type() != opType || !op.HasCategory() {
			continue
		}
		entry, ok := totals[op.CategoryID()]
		if !ok {
			category, found := s.categories.ByID(op.CategoryID())
			if !found {
				return nil, fmt.Errorf("%w: category %s referenced by operation %s",
					core.ErrNotFound, op.CategoryID(), op.ID())
			}
			entry = CategoryTotal{Category: category, Total: decimal.Zero}
		}
		entry.Total = entry.Total.Add(op.Amount())
		totals[op.CategoryID()] = entry
	}
	return totals, nil
}
