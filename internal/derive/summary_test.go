package derive

import (
	"testing"

	"finmate/internal/core"
)

func TestBuildMonthlySummary(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	transactions := []core.Transaction{
		tx(core.Income, "Freelance", 50000, day),
		tx(core.Expense, "Rent", 90000, day),
		tx(core.Expense, "Food", 30000, day),
		tx(core.Expense, "Transit", 5000, day),
	}
	sources := []core.IncomeSource{
		{Source: "Salary", Amount: core.Money{Cents: 250000}, Frequency: core.Monthly},
	}
	goals := []core.Goal{
		{Name: "Emergency Fund", CurrentAmount: core.Money{Cents: 40000}, TargetAmount: core.Money{Cents: 100000}},
		{Name: "Vacation", CurrentAmount: core.Money{Cents: 10000}, TargetAmount: core.Money{Cents: 50000}},
	}

	s := BuildMonthlySummary(transactions, sources, goals)
	if s.TotalIncome.Cents != 300000 {
		t.Errorf("TotalIncome = %d, want 300000", s.TotalIncome.Cents)
	}
	if s.TotalExpenses.Cents != 125000 {
		t.Errorf("TotalExpenses = %d, want 125000", s.TotalExpenses.Cents)
	}
	if s.GoalContributions.Cents != 50000 {
		t.Errorf("GoalContributions = %d, want 50000", s.GoalContributions.Cents)
	}
	if s.TotalSavings.Cents != 125000 {
		t.Errorf("TotalSavings = %d, want 125000", s.TotalSavings.Cents)
	}
	if len(s.TopCategories) != 3 {
		t.Fatalf("got %d top categories, want 3", len(s.TopCategories))
	}
	if s.TopCategories[0].Name != "Rent" || s.TopCategories[0].Amount.Cents != 90000 {
		t.Errorf("top category = %+v, want Rent at 90000", s.TopCategories[0])
	}
}

func TestBuildMonthlySummaryCapsTopCategories(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	var transactions []core.Transaction
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		transactions = append(transactions, tx(core.Expense, name, 1000, day))
	}

	s := BuildMonthlySummary(transactions, nil, nil)
	if len(s.TopCategories) != 5 {
		t.Errorf("got %d top categories, want 5", len(s.TopCategories))
	}
}

func TestBuildMonthlySummaryEmpty(t *testing.T) {
	s := BuildMonthlySummary(nil, nil, nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpenses.Cents != 0 || s.TotalSavings.Cents != 0 {
		t.Errorf("empty summary not zeroed: %+v", s)
	}
	if len(s.TopCategories) != 0 {
		t.Errorf("got %d top categories, want 0", len(s.TopCategories))
	}
}
