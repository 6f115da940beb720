package dto

import "github.com/shopspring/decimal"

// TransactionRequest is the body of create and update calls.
// Amount is a pointer so that an absent amount can be told apart from zero.
type TransactionRequest struct {
	Date        string           `json:"date" example:"2024-01-15"`
	Category    string           `json:"category" example:"Food"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.50"`
	Description *string          `json:"description" example:"Groceries"`
}

type TransactionResponse struct {
	ID          int64           `json:"id" example:"1"`
	Date        string          `json:"date" example:"2024-01-15"`
	Category    string          `json:"category" example:"Food"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"-42.5"`
	Description *string         `json:"description" example:"Groceries"`
}

type DeleteResponse struct {
	Success bool `json:"success" example:"true"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}
