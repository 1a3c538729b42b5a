package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrValidation marks malformed input to a constructor or mutator:
	// empty or over-length names, non-positive amounts, future dates,
	// negative balances. Validation never partially applies.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an id that does not resolve in its store.
	ErrNotFound = errors.New("not found")

	// ErrIncompatibleType marks an operation/category type mismatch.
	ErrIncompatibleType = errors.New("incompatible category type")

	// ErrInUse marks a delete rejected because operations still
	// reference the entity.
	ErrInUse = errors.New("entity is still referenced by operations")

	// ErrInsufficientFunds is a validation failure: a withdrawal
	// exceeding the current balance.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrValidation)
)

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// incompatibleErr names both types of a rejected category link.
func incompatibleErr(ct CategoryType, ot OperationType) error {
	return fmt.Errorf("%w: cannot attach a %s operation to a %s category",
		ErrIncompatibleType, ot, ct)
}

// insufficientFundsErr states the attempted amount against the balance so a
// failed withdrawal is diagnosable from the message alone.
func insufficientFundsErr(amount, balance decimal.Decimal) error {
	return fmt.Errorf("%w: cannot withdraw %s, balance is %s",
		ErrInsufficientFunds, amount.StringFixed(2), balance.StringFixed(2))
}
