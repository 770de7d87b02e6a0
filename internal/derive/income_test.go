package derive

import (
	"testing"

	"finmate/internal/core"
)

func src(amount int64, freq core.PayFrequency) core.IncomeSource {
	return core.IncomeSource{
		Source:    "test",
		Amount:    core.Money{Cents: amount},
		Frequency: freq,
		Date:      core.NewDate(2025, 4, 1),
	}
}

func TestMonthlyIncome(t *testing.T) {
	tests := []struct {
		name    string
		sources []core.IncomeSource
		want    int64
	}{
		{
			name:    "empty set yields zero",
			sources: nil,
			want:    0,
		},
		{
			name:    "monthly passes through",
			sources: []core.IncomeSource{src(50000, core.Monthly)},
			want:    50000,
		},
		{
			name:    "weekly multiplied by four",
			sources: []core.IncomeSource{src(10000, core.Weekly)},
			want:    40000,
		},
		{
			name:    "bi-weekly multiplied by two",
			sources: []core.IncomeSource{src(10000, core.BiWeekly)},
			want:    20000,
		},
		{
			name:    "annual divided by twelve",
			sources: []core.IncomeSource{src(120000, core.Annually)},
			want:    10000,
		},
		{
			name:    "unknown frequency treated as monthly",
			sources: []core.IncomeSource{src(5000, core.PayFrequency("Daily"))},
			want:    5000,
		},
		{
			name: "mixed cadences: 500 monthly + 100 weekly = 900",
			sources: []core.IncomeSource{
				src(50000, core.Monthly),
				src(10000, core.Weekly),
			},
			want: 90000,
		},
		{
			name:    "non-positive amount contributes zero",
			sources: []core.IncomeSource{src(-100, core.Monthly), src(0, core.Weekly)},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyIncome(tt.sources)
			if got.Cents != tt.want {
				t.Errorf("MonthlyIncome() = %d, want %d", got.Cents, tt.want)
			}
		})
	}
}

func TestMonthlyIncomeAdditivity(t *testing.T) {
	// Splitting one monthly entry into two whose amounts sum to the
	// original must not change the total.
	whole := MonthlyIncome([]core.IncomeSource{src(73300, core.Monthly)})
	split := MonthlyIncome([]core.IncomeSource{
		src(40000, core.Monthly),
		src(33300, core.Monthly),
	})
	if whole.Cents != split.Cents {
		t.Errorf("split total %d != whole total %d", split.Cents, whole.Cents)
	}
}

func TestMonthlyIncomeAnnualRounding(t *testing.T) {
	// 100.00/year is 8.33 + change per month; half-up rounding keeps cents.
	got := MonthlyIncome([]core.IncomeSource{src(10000, core.Annually)})
	if got.Cents != 833 {
		t.Errorf("annual 10000 cents -> %d, want 833", got.Cents)
	}
}
