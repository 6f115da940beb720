package dto

import "github.com/shopspring/decimal"

type CategoryTotalResponse struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"42.5"`
}

type MonthlyTotalResponse struct {
	Month    string          `json:"month" example:"2024-01"`
	Income   decimal.Decimal `json:"income" swaggertype:"string" example:"0"`
	Expenses decimal.Decimal `json:"expenses" swaggertype:"string" example:"42.5"`
}

type SummaryResponse struct {
	Balance  decimal.Decimal `json:"balance" swaggertype:"string" example:"-42.5"`
	Income   decimal.Decimal `json:"income" swaggertype:"string" example:"0"`
	Expenses decimal.Decimal `json:"expenses" swaggertype:"string" example:"42.5"`
}

// DashboardResponse carries the transaction list together with every derived view.
type DashboardResponse struct {
	Transactions   []TransactionResponse   `json:"transactions"`
	CategoryTotals []CategoryTotalResponse `json:"category_totals"`
	MonthlyTotals  []MonthlyTotalResponse  `json:"monthly_totals"`
	Summary        SummaryResponse         `json:"summary"`
}
