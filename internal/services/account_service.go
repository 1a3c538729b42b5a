package services

import (
	"fmt"

	"github.com/google/uuid"

	"tigerbank/internal/core"
	"tigerbank/internal/log"
	"tigerbank/internal/store"
)

// AccountService manages the lifecycle of accounts and categories. Deleting
// either is rejected while operations still reference it, so stored
// references always resolve.
type AccountService struct {
	accounts   *store.Accounts
	categories *store.Categories
	operations *store.Operations
	guard      *store.Guard
	logger     *log.Logger
}

func NewAccountService(
	accounts *store.Accounts,
	categories *store.Categories,
	operations *store.Operations,
	guard *store.Guard,
	logger *log.Logger,
) *AccountService {
	return &AccountService{
		accounts:   accounts,
		categories: categories,
		operations: operations,
		guard:      guard,
		logger:     logger.WithComponent("accounts"),
	}
}

// OpenAccount creates an account with a zero balance.
func (s *AccountService) OpenAccount(name string) (*core.BankAccount, error) {
	account, err := core.NewBankAccount(name)
	if err != nil {
		return nil, err
	}
	s.guard.RLock()
	defer s.guard.RUnlock()
	saved := s.accounts.Save(account)
	s.logger.Info("account opened", "id", saved.ID(), "name", saved.Name())
	return saved, nil
}

// RenameAccount applies the account name rules to an existing account.
func (s *AccountService) RenameAccount(id uuid.UUID, name string) error {
	release := s.guard.LockAccount(id)
	defer release()

	account, ok := s.accounts.ByID(id)
	if !ok {
		return fmt.Errorf("%w: account %s", core.ErrNotFound, id)
	}
	if err := account.Rename(name); err != nil {
		return err
	}
	s.accounts.Save(account)
	return nil
}

// DeleteAccount removes an account that has no operations left.
func (s *AccountService) DeleteAccount(id uuid.UUID) error {
	release := s.guard.LockAccount(id)
	defer release()

	if _, ok := s.accounts.ByID(id); !ok {
		return fmt.Errorf("%w: account %s", core.ErrNotFound, id)
	}
	if n := len(s.operations.ByAccount(id)); n > 0 {
		return fmt.Errorf("%w: account %s has %d operations", core.ErrInUse, id, n)
	}
	s.accounts.Delete(id)
	s.logger.Info("account deleted", "id", id)
	return nil
}

// CreateCategory creates a category of the given type.
func (s *AccountService) CreateCategory(name string, catType core.CategoryType) (*core.Category, error) {
	category, err := core.NewCategory(name, catType)
	if err != nil {
		return nil, err
	}
	s.guard.RLock()
	defer s.guard.RUnlock()
	saved := s.categories.Save(category)
	s.logger.Info("category created", "id", saved.ID(), "name", saved.Name(), "type", saved.Type())
	return saved, nil
}

// RenameCategory applies the category name rules to an existing category.
func (s *AccountService) RenameCategory(id uuid.UUID, name string) error {
	s.guard.RLock()
	defer s.guard.RUnlock()

	category, ok := s.categories.ByID(id)
	if !ok {
		return fmt.Errorf("%w: category %s", core.ErrNotFound, id)
	}
	if err := category.Rename(name); err != nil {
		return err
	}
	s.categories.Save(category)
	return nil
}

// DeleteCategory removes a category no operation links to. It takes the
// exclusive lock: categories have no per-entity mutex, so the emptiness
// check and the delete must exclude an in-flight AddOperation that has
// resolved the category but not yet saved its operation.
func (s *AccountService) DeleteCategory(id uuid.UUID) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if _, ok := s.categories.ByID(id); !ok {
		return fmt.Errorf("%w: category %s", core.ErrNotFound, id)
	}
	if n := len(s.operations.ByCategory(id)); n > 0 {
		return fmt.Errorf("%w: category %s is linked by %d operations", core.ErrInUse, id, n)
	}
	s.categories.Delete(id)
	s.logger.Info("category deleted", "id", id)
	return nil
}
