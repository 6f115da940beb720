package service

import (
	"sort"

	"fintrack/internal/models"
)

// Aggregate computes category totals, monthly totals and summary totals from a full transaction set.
// Category totals keep the order in which each category first appears in transactions.
func Aggregate(transactions []*models.Transaction) models.Aggregates {
	categoryIndex := make(map[string]int)
	categories := make([]models.CategoryTotal, 0)

	monthIndex := make(map[string]int)
	months := make([]models.MonthlyTotal, 0)

	var summary models.Summary
	for _, tx := range transactions {
		summary.Balance = summary.Balance.Add(tx.Amount)

		key := tx.MonthKey()
		i, ok := monthIndex[key]
		if !ok {
			i = len(months)
			monthIndex[key] = i
			months = append(months, models.MonthlyTotal{Month: key})
		}

		switch {
		case tx.IsIncome():
			summary.Income = summary.Income.Add(tx.Amount)
			months[i].Income = months[i].Income.Add(tx.Amount)
		case tx.IsExpense():
			spent := tx.Amount.Abs()
			summary.Expenses = summary.Expenses.Add(spent)
			months[i].Expenses = months[i].Expenses.Add(spent)

			j, ok := categoryIndex[tx.Category]
			if !ok {
				j = len(categories)
				categoryIndex[tx.Category] = j
				categories = append(categories, models.CategoryTotal{Category: tx.Category})
			}
			categories[j].Total = categories[j].Total.Add(spent)
		}
	}

	sort.Slice(months, func(a, b int) bool {
		return months[a].Month < months[b].Month
	})

	return models.Aggregates{
		CategoryTotals: categories,
		MonthlyTotals:  months,
		Summary:        summary,
	}
}

