package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"tigerbank/internal/config"
	"tigerbank/internal/core"
	"tigerbank/internal/log"
	"tigerbank/internal/services"
	"tigerbank/internal/store"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := log.New(log.Config{Level: level, Component: "tigerbank"})
	log.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("demo run failed", "error", err)
		os.Exit(1)
	}
}

// run seeds a small ledger, prints the derived reports, and round-trips the
// dataset through a JSON export file.
func run(cfg *config.Config, logger *log.Logger) error {
	accounts := store.NewAccounts()
	categories := store.NewCategories()
	operations := store.NewOperations()
	guard := store.NewGuard()

	recalc := services.NewBalanceRecalculator(accounts, operations)
	opSvc := services.NewOperationService(accounts, categories, operations, recalc, guard, logger)
	acctSvc := services.NewAccountService(accounts, categories, operations, guard, logger)
	analytics := services.NewAnalyticsService(operations, categories, guard)
	data := services.NewDataService(accounts, categories, operations, guard, logger)

	fmt.Println("TIGERBANK - personal finance ledger")
	fmt.Println()

	account, err := acctSvc.OpenAccount("Main account")
	if err != nil {
		return err
	}
	fmt.Printf("Account opened: %s (%s)\n", account.Name(), account.ID())

	salary, err := acctSvc.CreateCategory("Salary", core.CategoryIncome)
	if err != nil {
		return err
	}
	cafe, err := acctSvc.CreateCategory("Cafe", core.CategoryExpense)
	if err != nil {
		return err
	}
	health, err := acctSvc.CreateCategory("Health", core.CategoryExpense)
	if err != nil {
		return err
	}
	fmt.Printf("Categories: %s, %s, %s\n", salary.Name(), cafe.Name(), health.Name())

	if cfg.SeedDemo {
		if err := seed(opSvc, account, salary, cafe, health, cfg.SeedDeposit); err != nil {
			return err
		}
	}

	balance, err := opSvc.AccountBalance(account.ID())
	if err != nil {
		return err
	}
	ops := opSvc.AccountOperations(account.ID())
	fmt.Printf("\nOperations: %d\nCurrent balance: %s\n", len(ops), balance.StringFixed(2))

	// Last seven days, today included: half-open [today-7, tomorrow).
	from := core.Today().AddDays(-7)
	to := core.Today().AddDays(1)
	fmt.Printf("Net income for the week: %s\n", analytics.NetIncome(from, to).StringFixed(2))

	expenses, err := analytics.GroupByCategory(from, to, core.Expense)
	if err != nil {
		return err
	}
	fmt.Println("\nExpenses by category:")
	for _, entry := range expenses {
		fmt.Printf("  %-15s %s\n", entry.Category.Name(), entry.Total.StringFixed(2))
	}

	if err := data.ExportToFile(cfg.DataFile); err != nil {
		return err
	}
	fmt.Printf("\nDataset exported to %s\n", cfg.DataFile)

	if err := data.ImportFromFile(cfg.DataFile); err != nil {
		return err
	}
	restored, err := opSvc.AccountBalance(account.ID())
	if err != nil {
		return err
	}
	if !restored.Equal(balance) {
		return fmt.Errorf("round trip changed balance: %s != %s",
			restored.StringFixed(2), balance.StringFixed(2))
	}
	fmt.Printf("Round trip verified, balance still %s\n", restored.StringFixed(2))
	return nil
}

// seed adds a handful of categorized operations plus a burst of concurrent
// one-unit deposits; the burst exercises the per-account serialization of
// operation writes and balance recalculation.
func seed(opSvc *services.OperationService, account *core.BankAccount,
	salary, cafe, health *core.Category, deposits int) error {
	type seedOp struct {
		opType   core.OperationType
		amount   string
		daysAgo  int
		desc     string
		category *core.Category
	}
	seeds := []seedOp{
		{core.Income, "100000.00", 5, "Advance payment", salary},
		{core.Expense, "450.50", 3, "Lunch", cafe},
		{core.Expense, "2500.00", 2, "Dentist", health},
		{core.Income, "90000.00", 0, "Salary", salary},
	}
	for _, s := range seeds {
		amount, err := decimal.NewFromString(s.amount)
		if err != nil {
			return err
		}
		op, err := core.NewOperation(s.opType, account.ID(), amount,
			core.Today().AddDays(-s.daysAgo), s.desc, s.category.ID())
		if err != nil {
			return err
		}
		if _, err := opSvc.AddOperation(op); err != nil {
			return err
		}
	}

	var g errgroup.Group
	for i := 0; i < deposits; i++ {
		g.Go(func() error {
			op, err := core.NewOperation(core.Income, account.ID(),
				decimal.NewFromInt(1), core.Today(), "", uuid.Nil)
			if err != nil {
				return err
			}
			_, err = opSvc.AddOperation(op)
			return err
		})
	}
	return g.Wait()
}
