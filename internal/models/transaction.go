package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the wire and for month keys.
const DateLayout = "2006-01-02"

// Transaction is a single dated, categorized, signed monetary record.
// Positive amounts are income and negative amounts are expenses; the store does not enforce it.
type Transaction struct {
	ID          int64           `db:"id"`
	Date        time.Time       `db:"date"`
	Category    string          `db:"category"`
	Amount      decimal.Decimal `db:"amount"`
	Description *string         `db:"description"`
}

// IsIncome reports whether the transaction counts toward income.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction counts toward expenses.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// MonthKey returns the zero-padded "YYYY-MM" key of the transaction date.
func (t *Transaction) MonthKey() string {
	return t.Date.Format("2006-01")
}
