package service

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(id int64, date, category, amount string) *models.Transaction {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return &models.Transaction{ID: id, Date: d, Category: category, Amount: decimal.RequireFromString(amount)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(nil)

	assert.Empty(t, agg.CategoryTotals)
	assert.Empty(t, agg.MonthlyTotals)
	assert.True(t, agg.Summary.Balance.IsZero())
	assert.True(t, agg.Summary.Income.IsZero())
	assert.True(t, agg.Summary.Expenses.IsZero())
}

func TestAggregateSingleExpense(t *testing.T) {
	agg := Aggregate([]*models.Transaction{tx(1, "2024-01-15", "Food", "-42.50")})

	require.Len(t, agg.CategoryTotals, 1)
	assert.Equal(t, "Food", agg.CategoryTotals[0].Category)
	assert.True(t, dec("42.50").Equal(agg.CategoryTotals[0].Total))

	require.Len(t, agg.MonthlyTotals, 1)
	assert.Equal(t, "2024-01", agg.MonthlyTotals[0].Month)
	assert.True(t, agg.MonthlyTotals[0].Income.IsZero())
	assert.True(t, dec("42.50").Equal(agg.MonthlyTotals[0].Expenses))

	assert.True(t, dec("-42.50").Equal(agg.Summary.Balance))
	assert.True(t, agg.Summary.Income.IsZero())
	assert.True(t, dec("42.50").Equal(agg.Summary.Expenses))
}

func TestAggregateMixed(t *testing.T) {
	// Newest first, as the store returns them.
	transactions := []*models.Transaction{
		tx(6, "2024-03-02", "Salary", "3000"),
		tx(5, "2024-03-01", "Food", "-20.10"),
		tx(4, "2024-02-14", "Gifts", "-35"),
		tx(3, "2024-02-01", "Refund", "0"),
		tx(2, "2023-12-24", "Food", "-12.40"),
		tx(1, "2023-12-01", "Salary", "2800.55"),
	}

	agg := Aggregate(transactions)

	require.Len(t, agg.CategoryTotals, 2)
	assert.Equal(t, "Food", agg.CategoryTotals[0].Category)
	assert.True(t, dec("32.50").Equal(agg.CategoryTotals[0].Total))
	assert.Equal(t, "Gifts", agg.CategoryTotals[1].Category)
	assert.True(t, dec("35").Equal(agg.CategoryTotals[1].Total))

	months := make([]string, len(agg.MonthlyTotals))
	for i, m := range agg.MonthlyTotals {
		months[i] = m.Month
	}
	assert.Equal(t, []string{"2023-12", "2024-02", "2024-03"}, months)

	assert.True(t, dec("2800.55").Equal(agg.MonthlyTotals[0].Income))
	assert.True(t, dec("12.40").Equal(agg.MonthlyTotals[0].Expenses))
	assert.True(t, agg.MonthlyTotals[1].Income.IsZero())
	assert.True(t, dec("35").Equal(agg.MonthlyTotals[1].Expenses))
	assert.True(t, dec("3000").Equal(agg.MonthlyTotals[2].Income))
	assert.True(t, dec("20.10").Equal(agg.MonthlyTotals[2].Expenses))

	assert.True(t, dec("5800.55").Equal(agg.Summary.Income))
	assert.True(t, dec("67.50").Equal(agg.Summary.Expenses))
	assert.True(t, dec("5733.05").Equal(agg.Summary.Balance))
}

func TestAggregateBalanceInvariant(t *testing.T) {
	sets := [][]*models.Transaction{
		{tx(1, "2024-01-01", "A", "10"), tx(2, "2024-01-02", "B", "-3.33")},
		{tx(1, "2024-05-01", "A", "0"), tx(2, "2024-05-01", "A", "0")},
		{tx(1, "2022-07-09", "A", "-1"), tx(2, "2021-07-09", "B", "-2"), tx(3, "2020-07-09", "C", "0.01")},
	}

	for _, set := range sets {
		agg := Aggregate(set)

		sum := decimal.Zero
		for _, item := range set {
			sum = sum.Add(item.Amount)
		}
		assert.True(t, sum.Equal(agg.Summary.Balance))
		assert.True(t, agg.Summary.Income.Sub(agg.Summary.Expenses).Equal(agg.Summary.Balance))
	}
}

func TestAggregateSkipsNonNegativeCategories(t *testing.T) {
	agg := Aggregate([]*models.Transaction{
		tx(3, "2024-01-03", "Salary", "100"),
		tx(2, "2024-01-02", "Bonus", "0"),
		tx(1, "2024-01-01", "Food", "-1"),
	})

	require.Len(t, agg.CategoryTotals, 1)
	assert.Equal(t, "Food", agg.CategoryTotals[0].Category)
}
