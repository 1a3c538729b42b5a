// Package core holds the ledger entities and the validation rules that
// protect their invariants: money scale and rounding, calendar-date bounds,
// name and description limits, and category/operation type compatibility.
package core

import "github.com/shopspring/decimal"

// amountScale is the number of fractional digits every money value carries.
const amountScale = 2

// RescaleAmount normalizes a monetary value to two fractional digits with
// half-up rounding. Ledger amounts are never negative, so decimal's
// round-half-away-from-zero is exactly half-up here. Rescaling an
// already-scaled value is a no-op.
func RescaleAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(amountScale)
}
