package service

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"go.uber.org/zap"
)

// TransactionStore is the ledger store the service reads from and writes to.
type TransactionStore interface {
	List(ctx context.Context) ([]*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	Update(ctx context.Context, params repository.UpdateParams) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type TransactionService struct {
	store  TransactionStore
	logger *zap.Logger
}

func NewTransactionService(store TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

// ListTransactions returns all transactions, date descending then id descending.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]dto.TransactionResponse, error) {
	transactions, err := s.store.List(ctx)
	if err != nil {
		return nil, &StoreError{Err: err}
	}
	return toTransactionResponses(transactions), nil
}

// Dashboard returns the transaction list together with its aggregates, recomputed on every call.
func (s *TransactionService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	transactions, err := s.store.List(ctx)
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	aggregates := Aggregate(transactions)

	resp := &dto.DashboardResponse{
		Transactions:   toTransactionResponses(transactions),
		CategoryTotals: make([]dto.CategoryTotalResponse, len(aggregates.CategoryTotals)),
		MonthlyTotals:  make([]dto.MonthlyTotalResponse, len(aggregates.MonthlyTotals)),
		Summary: dto.SummaryResponse{
			Balance:  aggregates.Summary.Balance,
			Income:   aggregates.Summary.Income,
			Expenses: aggregates.Summary.Expenses,
		},
	}
	for i, c := range aggregates.CategoryTotals {
		resp.CategoryTotals[i] = dto.CategoryTotalResponse{Category: c.Category, Total: c.Total}
	}
	for i, m := range aggregates.MonthlyTotals {
		resp.MonthlyTotals[i] = dto.MonthlyTotalResponse{Month: m.Month, Income: m.Income, Expenses: m.Expenses}
	}

	return resp, nil
}

// CreateTransaction validates and stores a new transaction.
// A zero amount is accepted; only an absent amount is rejected.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	category := sanitizeUTF8(req.Category)
	if req.Date == "" || category == "" || req.Amount == nil {
		return nil, &ValidationError{Message: MsgMissingFields}
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, &ValidationError{Message: MsgInvalidDate}
	}

	created, err := s.store.Create(ctx, &models.Transaction{
		Date:        date,
		Category:    category,
		Amount:      *req.Amount,
		Description: sanitizeOptional(req.Description),
	})
	if err != nil {
		return nil, &StoreError{Err: err}
	}

	s.logger.Info("Transaction created",
		zap.Int64("id", created.ID),
		zap.String("category", created.Category),
		zap.String("amount", created.Amount.String()),
	)

	resp := toTransactionResponse(created)
	return &resp, nil
}

// UpdateTransaction replaces every field of an existing transaction.
// Required fields are not re-validated: empty ones are written as NULL and rejected by the store.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	params := repository.UpdateParams{
		ID:          id,
		Amount:      req.Amount,
		Description: sanitizeOptional(req.Description),
	}
	if req.Date != "" {
		date, err := ParseDate(req.Date)
		if err != nil {
			return nil, &ValidationError{Message: MsgInvalidDate}
		}
		params.Date = &date
	}
	if category := sanitizeUTF8(req.Category); category != "" {
		params.Category = &category
	}

	updated, err := s.store.Update(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, &StoreError{Err: err}
	}

	s.logger.Info("Transaction updated", zap.Int64("id", updated.ID))

	resp := toTransactionResponse(updated)
	return &resp, nil
}

// DeleteTransaction removes a transaction. Removing an absent id succeeds.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return &StoreError{Err: err}
	}

	s.logger.Info("Transaction deleted", zap.Int64("id", id))

	return nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the calendar date at UTC midnight.
func ParseDate(value string) (time.Time, error) {
	if date, err := time.Parse(models.DateLayout, value); err == nil {
		return date, nil
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(models.DateLayout),
		Category:    tx.Category,
		Amount:      tx.Amount,
		Description: tx.Description,
	}
}

func toTransactionResponses(transactions []*models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = toTransactionResponse(tx)
	}
	return responses
}
