package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxAccountNameLen = 100

// BankAccount is a named account whose balance is derived from operation
// history. The balance mutates only through Deposit, Withdraw, or the
// recalculator's SetBalanceUnsafe; it is never negative and always carries
// two fractional digits.
type BankAccount struct {
	id      uuid.UUID
	name    string
	balance decimal.Decimal
}

// NewBankAccount opens an account with a zero balance.
func NewBankAccount(name string) (*BankAccount, error) {
	trimmed, err := validateAccountName(name)
	if err != nil {
		return nil, err
	}
	return &BankAccount{
		id:      uuid.New(),
		name:    trimmed,
		balance: RescaleAmount(decimal.Zero),
	}, nil
}

// RestoreBankAccount rebuilds an account from persisted state. The same
// validation as fresh creation applies, plus the non-negative balance check.
func RestoreBankAccount(id uuid.UUID, name string, balance decimal.Decimal) (*BankAccount, error) {
	if id == uuid.Nil {
		return nil, validationf("account id is required")
	}
	trimmed, err := validateAccountName(name)
	if err != nil {
		return nil, err
	}
	scaled, err := validateBalance(balance)
	if err != nil {
		return nil, err
	}
	return &BankAccount{id: id, name: trimmed, balance: scaled}, nil
}

func (a *BankAccount) ID() uuid.UUID            { return a.id }
func (a *BankAccount) Name() string             { return a.name }
func (a *BankAccount) Balance() decimal.Decimal { return a.balance }

// Rename trims and validates the new name before applying it.
func (a *BankAccount) Rename(name string) error {
	trimmed, err := validateAccountName(name)
	if err != nil {
		return err
	}
	a.name = trimmed
	return nil
}

// Deposit adds a positive amount to the balance.
func (a *BankAccount) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationf("deposit amount must be positive, got %s", amount)
	}
	a.balance = RescaleAmount(a.balance.Add(amount))
	return nil
}

// Withdraw removes a positive amount not exceeding the current balance.
func (a *BankAccount) Withdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return validationf("withdrawal amount must be positive, got %s", amount)
	}
	if a.balance.LessThan(amount) {
		return insufficientFundsErr(amount, a.balance)
	}
	a.balance = RescaleAmount(a.balance.Sub(amount))
	return nil
}

// SetBalanceUnsafe overwrites the balance without deposit/withdraw
// bookkeeping. The balance recalculator is the only legitimate caller; the
// non-negative and two-decimal invariants still hold.
func (a *BankAccount) SetBalanceUnsafe(balance decimal.Decimal) error {
	scaled, err := validateBalance(balance)
	if err != nil {
		return err
	}
	a.balance = scaled
	return nil
}

// Clone returns an independent copy.
func (a *BankAccount) Clone() *BankAccount {
	clone := *a
	return &clone
}

func validateAccountName(name string) (string, error) {
	t := strings.TrimSpace(name)
	if t == "" {
		return "", validationf("account name must not be empty")
	}
	if len([]rune(t)) > maxAccountNameLen {
		return "", validationf("account name exceeds %d characters", maxAccountNameLen)
	}
	return t, nil
}

func validateBalance(balance decimal.Decimal) (decimal.Decimal, error) {
	if balance.IsNegative() {
		return decimal.Decimal{}, validationf("balance must not be negative, got %s", balance)
	}
	return RescaleAmount(balance), nil
}
