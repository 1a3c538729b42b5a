package services

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"tigerbank/internal/bundle"
	"tigerbank/internal/core"
	"tigerbank/internal/log"
	"tigerbank/internal/store"
)

// DataService exports and imports the full entity graph. Export is a
// consistent point-in-time snapshot; import replaces everything or nothing.
type DataService struct {
	accounts   *store.Accounts
	categories *store.Categories
	operations *store.Operations
	guard      *store.Guard
	logger     *log.Logger
}

func NewDataService(
	accounts *store.Accounts,
	categories *store.Categories,
	operations *store.Operations,
	guard *store.Guard,
	logger *log.Logger,
) *DataService {
	return &DataService{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		guard:      guard,
		logger:     logger.WithComponent("data"),
	}
}

// ExportAll snapshots accounts, categories and operations under the
// exclusive lock, so no recalculation can slip between the three reads.
func (s *DataService) ExportAll() bundle.Bundle {
	s.guard.Lock()
	defer s.guard.Unlock()

	var b bundle.Bundle
	b.Accounts = make([]bundle.Account, 0, s.accounts.Len())
	for _, a := range s.accounts.All() {
		b.Accounts = append(b.Accounts, bundle.FromAccount(a))
	}
	b.Categories = make([]bundle.Category, 0, s.categories.Len())
	for _, c := range s.categories.All() {
		b.Categories = append(b.Categories, bundle.FromCategory(c))
	}
	b.Operations = make([]bundle.Operation, 0, s.operations.Len())
	for _, op := range s.operations.All() {
		b.Operations = append(b.Operations, bundle.FromOperation(op))
	}
	return b
}

// ImportAll replaces the whole store with the bundle's contents. Every
// entity is rebuilt through its validating constructor and every cross
// reference is checked before any store is touched; on failure the previous
// dataset stays fully intact. Readers observe either the old dataset or the
// new one, never a half-cleared store.
func (s *DataService) ImportAll(b bundle.Bundle) error {
	accounts := make([]*core.BankAccount, 0, len(b.Accounts))
	accountIDs := make(map[uuid.UUID]struct{}, len(b.Accounts))
	for _, wire := range b.Accounts {
		account, err := wire.ToEntity()
		if err != nil {
			return fmt.Errorf("import account: %w", err)
		}
		accounts = append(accounts, account)
		accountIDs[account.ID()] = struct{}{}
	}

	categories := make([]*core.Category, 0, len(b.Categories))
	categoryTypes := make(map[uuid.UUID]core.CategoryType, len(b.Categories))
	for _, wire := range b.Categories {
		category, err := wire.ToEntity()
		if err != nil {
			return fmt.Errorf("import category: %w", err)
		}
		categories = append(categories, category)
		categoryTypes[category.ID()] = category.Type()
	}

	operations := make([]*core.Operation, 0, len(b.Operations))
	for _, wire := range b.Operations {
		op, err := wire.ToEntity()
		if err != nil {
			return fmt.Errorf("import operation: %w", err)
		}
		if _, ok := accountIDs[op.AccountID()]; !ok {
			return fmt.Errorf("%w: operation %s references account %s",
				core.ErrNotFound, op.ID(), op.AccountID())
		}
		if op.HasCategory() {
			catType, ok := categoryTypes[op.CategoryID()]
			if !ok {
				return fmt.Errorf("%w: operation %s references category %s",
					core.ErrNotFound, op.ID(), op.CategoryID())
			}
			if !core.Compatible(catType, op.Type()) {
				return fmt.Errorf("%w: operation %s is %s but category %s is %s",
					core.ErrIncompatibleType, op.ID(), op.Type(), op.CategoryID(), catType)
			}
		}
		operations = append(operations, op)
	}

	s.guard.Lock()
	defer s.guard.Unlock()
	s.accounts.ReplaceAll(accounts)
	s.categories.ReplaceAll(categories)
	s.operations.ReplaceAll(operations)

	s.logger.Info("dataset imported",
		"accounts", len(accounts),
		"categories", len(categories),
		"operations", len(operations))
	return nil
}

// ExportToFile writes the snapshot as indented JSON.
func (s *DataService) ExportToFile(path string) error {
	data, err := bundle.Marshal(s.ExportAll())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	s.logger.Info("dataset exported", "path", path)
	return nil
}

// ImportFromFile reads a bundle file and replaces the store with it.
func (s *DataService) ImportFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	b, err := bundle.Unmarshal(data)
	if err != nil {
		return err
	}
	if err := s.ImportAll(b); err != nil {
		return err
	}
	s.logger.Info("dataset imported from file", "path", path)
	return nil
}
