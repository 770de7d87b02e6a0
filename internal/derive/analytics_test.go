package derive

import (
	"math"
	"testing"

	"finmate/internal/core"
)

func tx(kind core.TransactionKind, category string, cents int64, date core.Date) core.Transaction {
	return core.Transaction{
		Kind:        kind,
		Category:    category,
		Amount:      core.Money{Cents: cents},
		Date:        date,
		Description: category,
	}
}

func TestAnalyzeCategoryBreakdown(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	transactions := []core.Transaction{
		tx(core.Expense, "Food", 4000, day),
		tx(core.Expense, "Food", 1000, day),
		tx(core.Expense, "Rent", 5000, day),
	}

	report := Analyze(transactions, PeriodMonth)
	if len(report.Categories) != 2 {
		t.Fatalf("got %d categories, want 2", len(report.Categories))
	}

	food := report.Categories[0]
	if food.Category != "Food" || food.Amount.Cents != 5000 || food.Count != 2 {
		t.Errorf("Food = %+v, want 5000 cents over 2 transactions", food)
	}
	if food.Percentage != 50 {
		t.Errorf("Food percentage = %v, want 50", food.Percentage)
	}

	rent := report.Categories[1]
	if rent.Category != "Rent" || rent.Amount.Cents != 5000 || rent.Percentage != 50 {
		t.Errorf("Rent = %+v, want 5000 cents at 50%%", rent)
	}

	// Equal sums keep encounter order: Food was seen first.
	if report.Categories[0].Category != "Food" {
		t.Errorf("tie broken against encounter order: %s first", report.Categories[0].Category)
	}
}

func TestAnalyzePercentagesSumToHundred(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	transactions := []core.Transaction{
		tx(core.Expense, "Food", 3333, day),
		tx(core.Expense, "Rent", 3333, day),
		tx(core.Expense, "Fun", 3334, day),
	}

	report := Analyze(transactions, PeriodMonth)
	var sum float64
	for _, stat := range report.Categories {
		sum += stat.Percentage
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestAnalyzeInsights(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	transactions := []core.Transaction{
		tx(core.Income, "Salary", 300000, day),
		tx(core.Expense, "Food", 60000, day),
		tx(core.Expense, "Rent", 90000, day),
	}

	report := Analyze(transactions, PeriodMonth)
	in := report.Insights
	if in.TotalIncome.Cents != 300000 {
		t.Errorf("TotalIncome = %d, want 300000", in.TotalIncome.Cents)
	}
	if in.TotalExpenses.Cents != 150000 {
		t.Errorf("TotalExpenses = %d, want 150000", in.TotalExpenses.Cents)
	}
	if in.NetSavings.Cents != 150000 {
		t.Errorf("NetSavings = %d, want 150000", in.NetSavings.Cents)
	}
	if in.TopCategory != "Rent" {
		t.Errorf("TopCategory = %s, want Rent", in.TopCategory)
	}
	if in.AvgDailySpend.Cents != 150000/30 {
		t.Errorf("AvgDailySpend = %d, want %d", in.AvgDailySpend.Cents, 150000/30)
	}
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	report := Analyze(nil, PeriodWeek)
	if report.Insights.TopCategory != "N/A" {
		t.Errorf("TopCategory = %s, want N/A", report.Insights.TopCategory)
	}
	if report.Insights.NetSavings.Cents != 0 {
		t.Errorf("NetSavings = %d, want 0", report.Insights.NetSavings.Cents)
	}
	if len(report.Categories) != 0 || len(report.Trend) != 0 {
		t.Errorf("expected empty breakdown and trend, got %d/%d", len(report.Categories), len(report.Trend))
	}
}

func TestAnalyzeIncomeOnlySnapshot(t *testing.T) {
	day := core.NewDate(2025, 4, 10)
	report := Analyze([]core.Transaction{tx(core.Income, "Salary", 100000, day)}, PeriodMonth)
	if report.Insights.TopCategory != "N/A" {
		t.Errorf("TopCategory = %s, want N/A without expenses", report.Insights.TopCategory)
	}
	if report.Insights.TotalIncome.Cents != 100000 {
		t.Errorf("TotalIncome = %d, want 100000", report.Insights.TotalIncome.Cents)
	}
}

func TestBuildTrendBuckets(t *testing.T) {
	transactions := []core.Transaction{
		tx(core.Income, "Salary", 50000, core.NewDate(2025, 4, 7)),  // Monday
		tx(core.Expense, "Food", 2000, core.NewDate(2025, 4, 7)),    // same bucket
		tx(core.Expense, "Transit", 500, core.NewDate(2025, 4, 8)),  // Tuesday
	}

	trend := buildTrend(transactions, PeriodWeek)
	if len(trend) != 2 {
		t.Fatalf("got %d trend points, want 2", len(trend))
	}
	if trend[0].Period != "Mon" || trend[1].Period != "Tue" {
		t.Errorf("bucket labels = %s,%s, want Mon,Tue", trend[0].Period, trend[1].Period)
	}
	if trend[0].Net.Cents != 48000 {
		t.Errorf("Monday net = %d, want 48000", trend[0].Net.Cents)
	}
	if trend[1].Net.Cents != -500 {
		t.Errorf("Tuesday net = %d, want -500", trend[1].Net.Cents)
	}
}

func TestBucketKeyFormats(t *testing.T) {
	day := core.NewDate(2025, 4, 7).Time
	tests := []struct {
		period Period
		want   string
	}{
		{PeriodWeek, "Mon"},
		{PeriodMonth, "Apr 07"},
		{PeriodQuarter, "Apr 2025"},
		{PeriodYear, "Apr 2025"},
	}
	for _, tt := range tests {
		if got := bucketKey(day, tt.period); got != tt.want {
			t.Errorf("bucketKey(%s) = %s, want %s", tt.period, got, tt.want)
		}
	}
}

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear} {
		if !p.Valid() {
			t.Errorf("%s should be valid", p)
		}
	}
	if Period("fortnight").Valid() {
		t.Error("unknown period should be invalid")
	}
}
