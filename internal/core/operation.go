package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxDescriptionLen = 255

// Operation is a single income or expense movement on an account. Type and
// account are fixed at creation; description and category link may change
// afterwards through the re-validating mutators.
type Operation struct {
	id          uuid.UUID
	opType      OperationType
	accountID   uuid.UUID
	amount      decimal.Decimal
	date        Date
	description string    // empty means absent
	categoryID  uuid.UUID // uuid.Nil means uncategorized
}

// NewOperation creates an operation. The amount must be strictly positive
// (stored at two decimals, half-up) and the date must not lie in the future.
// Pass uuid.Nil for categoryID to leave the operation uncategorized.
func NewOperation(opType OperationType, accountID uuid.UUID, amount decimal.Decimal,
	date Date, description string, categoryID uuid.UUID) (*Operation, error) {
	op, err := RestoreOperation(uuid.New(), opType, accountID, amount, date, description, categoryID)
	if err != nil {
		return nil, err
	}
	return op, nil
}

// RestoreOperation rebuilds an operation from persisted state, applying the
// same validation as fresh creation.
func RestoreOperation(id uuid.UUID, opType OperationType, accountID uuid.UUID,
	amount decimal.Decimal, date Date, description string, categoryID uuid.UUID) (*Operation, error) {
	if id == uuid.Nil {
		return nil, validationf("operation id is required")
	}
	if !opType.Valid() {
		return nil, validationf("unknown operation type %q", opType)
	}
	if accountID == uuid.Nil {
		return nil, validationf("operation account id is required")
	}
	scaled, err := validateOperationAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := validateOperationDate(date); err != nil {
		return nil, err
	}
	desc, err := normalizeDescription(description)
	if err != nil {
		return nil, err
	}
	return &Operation{
		id:          id,
		opType:      opType,
		accountID:   accountID,
		amount:      scaled,
		date:        date,
		description: desc,
		categoryID:  categoryID,
	}, nil
}

func (o *Operation) ID() uuid.UUID           { return o.id }
func (o *Operation) Type() OperationType     { return o.opType }
func (o *Operation) AccountID() uuid.UUID    { return o.accountID }
func (o *Operation) Amount() decimal.Decimal { return o.amount }
func (o *Operation) Date() Date              { return o.date }
func (o *Operation) Description() string     { return o.description }
func (o *Operation) CategoryID() uuid.UUID   { return o.categoryID }

// HasCategory reports whether a category is linked.
func (o *Operation) HasCategory() bool { return o.categoryID != uuid.Nil }

// AmountWithSign is the operation's canonical contribution to its account's
// balance: the amount for income, its negation for expense.
func (o *Operation) AmountWithSign() decimal.Decimal {
	if o.opType == Expense {
		return o.amount.Neg()
	}
	return o.amount
}

// AssignCategory links a category after checking type compatibility. A nil
// category clears the link. On rejection the previous link is untouched.
func (o *Operation) AssignCategory(c *Category) error {
	if c == nil {
		o.categoryID = uuid.Nil
		return nil
	}
	if err := c.ValidateOperationCompatibility(o.opType); err != nil {
		return err
	}
	o.categoryID = c.ID()
	return nil
}

// RemoveCategory clears the category link unconditionally.
func (o *Operation) RemoveCategory() {
	o.categoryID = uuid.Nil
}

// UpdateDescription re-applies the construction-time normalization: trim,
// empty or whitespace-only becomes absent, over 255 characters fails.
func (o *Operation) UpdateDescription(text string) error {
	desc, err := normalizeDescription(text)
	if err != nil {
		return err
	}
	o.description = desc
	return nil
}

// Clone returns an independent copy.
func (o *Operation) Clone() *Operation {
	clone := *o
	return &clone
}

func validateOperationAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, validationf("operation amount must be positive, got %s", amount)
	}
	return RescaleAmount(amount), nil
}

func validateOperationDate(date Date) error {
	if date.IsZero() {
		return validationf("operation date is required")
	}
	if date.After(Today()) {
		return validationf("operation date %s lies in the future", date)
	}
	return nil
}

func normalizeDescription(text string) (string, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return "", nil
	}
	if len([]rune(t)) > maxDescriptionLen {
		return "", validationf("description exceeds %d characters", maxDescriptionLen)
	}
	return t, nil
}
