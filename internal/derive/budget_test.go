package derive

import (
	"testing"

	"finmate/internal/core"
)

func expense(category string, cents int64) core.Transaction {
	return core.Transaction{
		Description: "test",
		Amount:      core.Money{Cents: cents},
		Category:    category,
		Kind:        core.Expense,
		Date:        core.NewDate(2025, 4, 10),
	}
}

func budgetCat(name string, limit int64) core.BudgetCategory {
	return core.BudgetCategory{Name: name, Budget: core.Money{Cents: limit}}
}

func TestBuildBudgetReport(t *testing.T) {
	cats := []core.BudgetCategory{
		budgetCat("Rent", 25000),
		budgetCat("Groceries", 20000),
		budgetCat("Transport", 10000),
	}
	txs := []core.Transaction{
		expense("Rent", 25000),
		expense("Groceries", 12000),
		expense("Groceries", 6050),
		expense("Coffee", 450), // no matching budget line
	}
	income := core.Money{Cents: 85000}

	report := BuildBudgetReport(cats, txs, income)

	if report.TotalBudgeted.Cents != 55000 {
		t.Errorf("TotalBudgeted = %d, want 55000", report.TotalBudgeted.Cents)
	}
	if report.TotalSpent.Cents != 43050 {
		t.Errorf("TotalSpent = %d, want 43050", report.TotalSpent.Cents)
	}
	if report.Unbudgeted.Cents != 30000 {
		t.Errorf("Unbudgeted = %d, want 30000", report.Unbudgeted.Cents)
	}

	byName := make(map[string]CategoryBudget)
	for _, cb := range report.Categories {
		byName[cb.Category.Name] = cb
	}
	if got := byName["Rent"]; got.Spent.Cents != 25000 || got.Utilization != 100 {
		t.Errorf("Rent spent=%d util=%d, want 25000/100", got.Spent.Cents, got.Utilization)
	}
	if got := byName["Groceries"]; got.Spent.Cents != 18050 || got.Utilization != 90 {
		t.Errorf("Groceries spent=%d util=%d, want 18050/90", got.Spent.Cents, got.Utilization)
	}
	if got := byName["Transport"]; got.Spent.Cents != 0 || got.Utilization != 0 {
		t.Errorf("Transport spent=%d util=%d, want 0/0", got.Spent.Cents, got.Utilization)
	}
}

func TestBuildBudgetReportOverAllocated(t *testing.T) {
	report := BuildBudgetReport(
		[]core.BudgetCategory{budgetCat("Rent", 90000)},
		nil,
		core.Money{Cents: 85000},
	)
	if report.Unbudgeted.Cents != -5000 {
		t.Errorf("Unbudgeted = %d, want -5000 (over-allocated)", report.Unbudgeted.Cents)
	}
}

func TestBuildBudgetReportZeroBudget(t *testing.T) {
	// budget=0 and spent=0 must not panic or produce a bogus percentage.
	report := BuildBudgetReport(
		[]core.BudgetCategory{budgetCat("Misc", 0)},
		nil,
		core.Money{},
	)
	if got := report.Categories[0].Utilization; got != 0 {
		t.Errorf("Utilization with zero budget = %d, want 0", got)
	}
}

func TestBuildBudgetReportCaseSensitiveMatch(t *testing.T) {
	report := BuildBudgetReport(
		[]core.BudgetCategory{budgetCat("Food", 10000)},
		[]core.Transaction{expense("food", 5000)},
		core.Money{},
	)
	if got := report.Categories[0].Spent.Cents; got != 0 {
		t.Errorf("lowercase category matched, spent = %d, want 0", got)
	}
}

func TestBuildBudgetReportIgnoresIncome(t *testing.T) {
	tx := expense("Food", 5000)
	tx.Kind = core.Income
	report := BuildBudgetReport(
		[]core.BudgetCategory{budgetCat("Food", 10000)},
		[]core.Transaction{tx},
		core.Money{},
	)
	if got := report.Categories[0].Spent.Cents; got != 0 {
		t.Errorf("income transaction counted as spend: %d", got)
	}
}
