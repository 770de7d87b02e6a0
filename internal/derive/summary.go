package derive

import (
	"sort"

	"finmate/internal/core"
)

// CategoryAmount is a name/amount pair for the report's top-category list.
type CategoryAmount struct {
	Name   string
	Amount core.Money
}

// MonthlySummary is the current-month report: transaction totals combined
// with normalized income sources and goal contributions.
type MonthlySummary struct {
	TotalIncome       core.Money // monthly-equivalent sources + income transactions
	TotalExpenses     core.Money
	GoalContributions core.Money // sum of current goal balances
	TotalSavings      core.Money // income - expenses - contributions
	TopCategories     []CategoryAmount
}

// BuildMonthlySummary reduces a month's transactions, the full income
// source list, and the goal set into the report page's figures.
// Transactions are expected pre-filtered to the month in question.
func BuildMonthlySummary(transactions []core.Transaction, sources []core.IncomeSource, goals []core.Goal) MonthlySummary {
	var sum MonthlySummary

	spendByCategory := make(map[string]int64)
	var order []string
	for _, tx := range transactions {
		if tx.Kind == core.Income {
			sum.TotalIncome.Cents += tx.Amount.Cents
			continue
		}
		sum.TotalExpenses.Cents += tx.Amount.Cents
		if _, seen := spendByCategory[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		spendByCategory[tx.Category] += tx.Amount.Cents
	}

	sum.TotalIncome.Cents += MonthlyIncome(sources).Cents

	for _, g := range goals {
		if g.CurrentAmount.Cents > 0 {
			sum.GoalContributions.Cents += g.CurrentAmount.Cents
		}
	}
	sum.TotalSavings = sum.TotalIncome.Sub(sum.TotalExpenses).Sub(sum.GoalContributions)

	for _, name := range order {
		sum.TopCategories = append(sum.TopCategories, CategoryAmount{
			Name:   name,
			Amount: core.Money{Cents: spendByCategory[name]},
		})
	}
	sort.SliceStable(sum.TopCategories, func(i, j int) bool {
		return sum.TopCategories[i].Amount.Cents > sum.TopCategories[j].Amount.Cents
	})
	if len(sum.TopCategories) > 5 {
		sum.TopCategories = sum.TopCategories[:5]
	}
	return sum
}
