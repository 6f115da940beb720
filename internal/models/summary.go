package models

import "github.com/shopspring/decimal"

// CategoryTotal is the spending accumulated under one category label.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthlyTotal splits one calendar month into income and expenses.
type MonthlyTotal struct {
	Month    string // YYYY-MM
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Summary holds the overall totals across every transaction.
type Summary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Aggregates are the derived views computed from a full transaction set.
type Aggregates struct {
	CategoryTotals []CategoryTotal
	MonthlyTotals  []MonthlyTotal
	Summary        Summary
}
