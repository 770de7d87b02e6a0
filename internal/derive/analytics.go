package derive

import (
	"sort"
	"time"

	"finmate/internal/core"
)

// Period is the analytics granularity.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// Days returns the fixed day count used for averages. These are display
// constants, not exact calendar spans.
func (p Period) Days() int {
	switch p {
	case PeriodWeek:
		return 7
	case PeriodQuarter:
		return 90
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// Valid reports whether the period is one of the supported granularities.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	default:
		return false
	}
}

// Start returns the inclusive lower bound of the period ending today.
func (p Period) Start(today time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return today.AddDate(0, 0, -7)
	case PeriodQuarter:
		return today.AddDate(0, -3, 0)
	case PeriodYear:
		return today.AddDate(0, -12, 0)
	default:
		return today.AddDate(0, -1, 0)
	}
}

// CategoryStat is one row of the ranked category breakdown.
type CategoryStat struct {
	Category   string
	Amount     core.Money
	Count      int
	Percentage float64 // share of total expense sum
}

// TrendPoint is one bucket of the period-over-period series.
type TrendPoint struct {
	Period   string
	Income   core.Money
	Expenses core.Money
	Net      core.Money
}

// Insights are the top-level figures shown above the charts.
type Insights struct {
	TotalIncome   core.Money
	TotalExpenses core.Money
	NetSavings    core.Money
	TopCategory   string // "N/A" when no expenses exist
	AvgDailySpend core.Money
}

// Report bundles everything the analytics page needs for one period.
type Report struct {
	Period     Period
	Categories []CategoryStat
	Trend      []TrendPoint
	Insights   Insights
}

// Analyze reduces a date-range-filtered transaction snapshot into the
// category breakdown, the trend series, and the headline insights.
func Analyze(transactions []core.Transaction, period Period) Report {
	report := Report{Period: period}

	// Category breakdown over expense-kind transactions only. Encounter
	// order is preserved so equal sums keep a stable ranking.
	sums := make(map[string]*CategoryStat)
	var order []string
	var totalIncome, totalExpenses int64
	for _, tx := range transactions {
		if tx.Kind != core.Expense {
			totalIncome += tx.Amount.Cents
			continue
		}
		totalExpenses += tx.Amount.Cents
		stat, ok := sums[tx.Category]
		if !ok {
			stat = &CategoryStat{Category: tx.Category}
			sums[tx.Category] = stat
			order = append(order, tx.Category)
		}
		stat.Amount.Cents += tx.Amount.Cents
		stat.Count++
	}
	for _, name := range order {
		stat := *sums[name]
		if totalExpenses > 0 {
			stat.Percentage = float64(stat.Amount.Cents) / float64(totalExpenses) * 100
		}
		report.Categories = append(report.Categories, stat)
	}
	sort.SliceStable(report.Categories, func(i, j int) bool {
		return report.Categories[i].Amount.Cents > report.Categories[j].Amount.Cents
	})

	report.Trend = buildTrend(transactions, period)

	topCategory := "N/A"
	if len(report.Categories) > 0 {
		topCategory = report.Categories[0].Category
	}
	report.Insights = Insights{
		TotalIncome:   core.Money{Cents: totalIncome},
		TotalExpenses: core.Money{Cents: totalExpenses},
		NetSavings:    core.Money{Cents: totalIncome - totalExpenses},
		TopCategory:   topCategory,
		AvgDailySpend: core.Money{Cents: totalExpenses / int64(period.Days())},
	}
	return report
}

// buildTrend buckets transactions by a period key: weekday label for a
// week view, "Jan 02" for a month view, "Jan 2006" otherwise. Buckets
// appear in first-encounter order, which matches the input's date
// ordering when the snapshot is sorted.
func buildTrend(transactions []core.Transaction, period Period) []TrendPoint {
	buckets := make(map[string]*TrendPoint)
	var order []string
	for _, tx := range transactions {
		key := bucketKey(tx.Date.Time, period)
		point, ok := buckets[key]
		if !ok {
			point = &TrendPoint{Period: key}
			buckets[key] = point
			order = append(order, key)
		}
		if tx.Kind == core.Income {
			point.Income.Cents += tx.Amount.Cents
		} else {
			point.Expenses.Cents += tx.Amount.Cents
		}
	}
	trend := make([]TrendPoint, 0, len(order))
	for _, key := range order {
		point := *buckets[key]
		point.Net = point.Income.Sub(point.Expenses)
		trend = append(trend, point)
	}
	return trend
}

func bucketKey(t time.Time, period Period) string {
	switch period {
	case PeriodWeek:
		return t.Format("Mon")
	case PeriodMonth:
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 2006")
	}
}
