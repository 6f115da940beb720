package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a statement targeting one row matched none.
var ErrNotFound = errors.New("transaction not found")

const transactionsTable = "transactions"

var transactionColumns = []string{"id", "date", "category", "amount", "description"}

// UpdateParams is a full replacement of a transaction's mutable fields.
// Nil fields are written as NULL.
type UpdateParams struct {
	ID          int64
	Date        *time.Time
	Category    *string
	Amount      *decimal.Decimal
	Description *string
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

// List returns every transaction, newest date first and newest insert first within a date.
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	sql, args, err := listQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*models.Transaction, 0)
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Listed transactions", zap.Int("count", len(transactions)))

	return transactions, nil
}

// Create inserts a transaction and returns the stored row with its assigned id.
func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	sql, args, err := insertQuery(tx).ToSql()
	if err != nil {
		return nil, err
	}

	created, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	r.logger.Debug("Transaction created", zap.Int64("id", created.ID))

	return created, nil
}

// Update rewrites all mutable fields of a transaction. It returns ErrNotFound when no row has the id.
func (r *TransactionRepository) Update(ctx context.Context, params UpdateParams) (*models.Transaction, error) {
	sql, args, err := updateQuery(params).ToSql()
	if err != nil {
		return nil, err
	}

	updated, err := scanTransaction(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	r.logger.Debug("Transaction updated", zap.Int64("id", updated.ID))

	return updated, nil
}

// Delete removes a transaction. Deleting an absent id is not an error.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := deleteQuery(id).ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	r.logger.Debug("Transaction deleted", zap.Int64("id", id), zap.Int64("rows_affected", tag.RowsAffected()))

	return nil
}

func listQuery() squirrel.SelectBuilder {
	return squirrel.Select(transactionColumns...).
		From(transactionsTable).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)
}

func insertQuery(tx *models.Transaction) squirrel.InsertBuilder {
	return squirrel.Insert(transactionsTable).
		Columns("date", "category", "amount", "description").
		Values(tx.Date, tx.Category, tx.Amount, tx.Description).
		Suffix(returningClause()).
		PlaceholderFormat(squirrel.Dollar)
}

func updateQuery(params UpdateParams) squirrel.UpdateBuilder {
	return squirrel.Update(transactionsTable).
		Set("date", params.Date).
		Set("category", params.Category).
		Set("amount", params.Amount).
		Set("description", params.Description).
		Where(squirrel.Eq{"id": params.ID}).
		Suffix(returningClause()).
		PlaceholderFormat(squirrel.Dollar)
}

func deleteQuery(id int64) squirrel.DeleteBuilder {
	return squirrel.Delete(transactionsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)
}

func returningClause() string {
	return "RETURNING " + strings.Join(transactionColumns, ", ")
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var tx models.Transaction
	if err := row.Scan(&tx.ID, &tx.Date, &tx.Category, &tx.Amount, &tx.Description); err != nil {
		return nil, err
	}
	return &tx, nil
}
