package derive

import (
	"math"

	"finmate/internal/core"
)

// CategoryBudget is one budget line with its recomputed spend.
type CategoryBudget struct {
	Category    core.BudgetCategory
	Spent       core.Money
	Utilization int // round(spent/budget*100); 0 when budget is 0
	OverBudget  bool
}

// BudgetReport is the aggregate the budget page renders.
type BudgetReport struct {
	Categories    []CategoryBudget
	TotalBudgeted core.Money
	TotalSpent    core.Money
	MonthlyIncome core.Money
	// Unbudgeted = monthly income - total budgeted. Negative means the
	// user has allocated more than they earn.
	Unbudgeted core.Money
}

// BuildBudgetReport recomputes per-category spend by matching expense
// transactions to budget categories on exact, case-sensitive name
// equality. The Spent value stored on the input categories is ignored;
// this derivation is the authoritative one and callers persist it back
// best-effort.
func BuildBudgetReport(categories []core.BudgetCategory, transactions []core.Transaction, monthlyIncome core.Money) BudgetReport {
	spentByName := make(map[string]int64, len(categories))
	for _, tx := range transactions {
		if tx.Kind != core.Expense {
			continue
		}
		spentByName[tx.Category] += tx.Amount.Cents
	}

	report := BudgetReport{MonthlyIncome: monthlyIncome}
	for _, cat := range categories {
		spent := core.Money{Cents: spentByName[cat.Name]}
		cb := CategoryBudget{
			Category:    cat,
			Spent:       spent,
			Utilization: utilizationPercent(spent, cat.Budget),
			OverBudget:  spent.Cents > cat.Budget.Cents,
		}
		report.Categories = append(report.Categories, cb)
		report.TotalBudgeted.Cents += cat.Budget.Cents
		report.TotalSpent.Cents += spent.Cents
	}
	report.Unbudgeted = monthlyIncome.Sub(report.TotalBudgeted)
	return report
}

// utilizationPercent guards the zero-budget case: a category with no
// budget reports 0% instead of dividing by zero.
func utilizationPercent(spent, budget core.Money) int {
	if budget.Cents == 0 {
		return 0
	}
	return int(math.Round(float64(spent.Cents) / float64(budget.Cents) * 100))
}
