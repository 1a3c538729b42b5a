// Package bundle defines the serialized shape of a full ledger snapshot and
// its JSON codec. This is the sole wire contract for export/import: dates as
// ISO-8601 calendar dates, money as decimal strings with exactly two
// fractional digits, optional fields omitted when absent, unknown fields
// ignored on read.
package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tigerbank/internal/core"
)

// Bundle is a point-in-time snapshot of the whole entity graph.
type Bundle struct {
	Accounts   []Account   `json:"accounts"`
	Categories []Category  `json:"categories"`
	Operations []Operation `json:"operations"`
}

type Account struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Balance string    `json:"balance"`
}

type Category struct {
	ID   uuid.UUID         `json:"id"`
	Name string            `json:"name"`
	Type core.CategoryType `json:"type"`
}

type Operation struct {
	ID          uuid.UUID          `json:"id"`
	Type        core.OperationType `json:"type"`
	AccountID   uuid.UUID          `json:"accountId"`
	Amount      string             `json:"amount"`
	Date        core.Date          `json:"date"`
	Description string             `json:"description,omitempty"`
	CategoryID  *uuid.UUID         `json:"categoryId,omitempty"`
}

// FromAccount converts an entity to its wire form.
func FromAccount(a *core.BankAccount) Account {
	return Account{
		ID:      a.ID(),
		Name:    a.Name(),
		Balance: a.Balance().StringFixed(2),
	}
}

// FromCategory converts an entity to its wire form.
func FromCategory(c *core.Category) Category {
	return Category{ID: c.ID(), Name: c.Name(), Type: c.Type()}
}

// FromOperation converts an entity to its wire form.
func FromOperation(op *core.Operation) Operation {
	wire := Operation{
		ID:          op.ID(),
		Type:        op.Type(),
		AccountID:   op.AccountID(),
		Amount:      op.Amount().StringFixed(2),
		Date:        op.Date(),
		Description: op.Description(),
	}
	if op.HasCategory() {
		id := op.CategoryID()
		wire.CategoryID = &id
	}
	return wire
}

// ToEntity rebuilds the account through the validating restore constructor.
func (a Account) ToEntity() (*core.BankAccount, error) {
	balance, err := decimal.NewFromString(a.Balance)
	if err != nil {
		return nil, fmt.Errorf("account %s: parse balance %q: %w", a.ID, a.Balance, err)
	}
	return core.RestoreBankAccount(a.ID, a.Name, balance)
}

// ToEntity rebuilds the category through the validating restore constructor.
func (c Category) ToEntity() (*core.Category, error) {
	return core.RestoreCategory(c.ID, c.Name, c.Type)
}

// ToEntity rebuilds the operation through the validating restore constructor.
func (o Operation) ToEntity() (*core.Operation, error) {
	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return nil, fmt.Errorf("operation %s: parse amount %q: %w", o.ID, o.Amount, err)
	}
	categoryID := uuid.Nil
	if o.CategoryID != nil {
		categoryID = *o.CategoryID
	}
	return core.RestoreOperation(o.ID, o.Type, o.AccountID, amount, o.Date, o.Description, categoryID)
}

// Marshal renders the bundle as indented JSON.
func Marshal(b Bundle) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal bundle: %w", err)
	}
	return data, nil
}

// Unmarshal parses a bundle, ignoring unknown fields for forward-compatible
// reads.
func Unmarshal(data []byte) (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("unmarshal bundle: %w", err)
	}
	return b, nil
}
