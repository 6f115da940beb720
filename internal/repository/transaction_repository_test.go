package repository

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuery(t *testing.T) {
	sql, args, err := listQuery().ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, date, category, amount, description FROM transactions ORDER BY date DESC, id DESC", sql)
	assert.Empty(t, args)
}

func TestInsertQuery(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		Date:     date,
		Category: "Food",
		Amount:   decimal.RequireFromString("-42.50"),
	}

	sql, args, err := insertQuery(tx).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO transactions (date,category,amount,description) VALUES ($1,$2,$3,$4) RETURNING id, date, category, amount, description",
		sql,
	)
	require.Len(t, args, 4)
	assert.Equal(t, date, args[0])
	assert.Equal(t, "Food", args[1])
	assert.True(t, tx.Amount.Equal(args[2].(decimal.Decimal)))
	assert.Nil(t, args[3])
}

func TestUpdateQuery(t *testing.T) {
	category := "Rent"
	amount := decimal.RequireFromString("-900")

	sql, args, err := updateQuery(UpdateParams{ID: 7, Category: &category, Amount: &amount}).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE transactions SET date = $1, category = $2, amount = $3, description = $4 WHERE id = $5 RETURNING id, date, category, amount, description",
		sql,
	)
	require.Len(t, args, 5)
	assert.Nil(t, args[0])
	assert.Equal(t, &category, args[1])
	assert.Equal(t, &amount, args[2])
	assert.Equal(t, int64(7), args[4])
}

func TestDeleteQuery(t *testing.T) {
	sql, args, err := deleteQuery(3).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM transactions WHERE id = $1", sql)
	assert.Equal(t, []interface{}{int64(3)}, args)
}
