package http

import (
	"finmate/internal/core"
	"finmate/internal/derive"
	"finmate/internal/services"
)

// Response payloads render every amount twice: raw cents for clients
// that compute, and a formatted string in the user's display currency
// for clients that only render.

type moneyDTO struct {
	Cents     int64  `json:"cents"`
	Formatted string `json:"formatted"`
}

func moneyOut(m core.Money, pref core.CurrencyPreference) moneyDTO {
	return moneyDTO{Cents: m.Cents, Formatted: m.Format(pref)}
}

func dateOut(d core.Date) string {
	if d.IsEmpty() {
		return ""
	}
	return d.Format("2006-01-02")
}

type transactionResponse struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      moneyDTO `json:"amount"`
	Category    string   `json:"category"`
	Kind        string   `json:"kind"`
	Date        string   `json:"date"`
}

func transactionOut(tx core.Transaction, pref core.CurrencyPreference) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Description: tx.Description,
		Amount:      moneyOut(tx.Amount, pref),
		Category:    tx.Category,
		Kind:        string(tx.Kind),
		Date:        dateOut(tx.Date),
	}
}

type incomeSourceResponse struct {
	ID        string   `json:"id"`
	Source    string   `json:"source"`
	Amount    moneyDTO `json:"amount"`
	Frequency string   `json:"frequency"`
	Date      string   `json:"date"`
}

func incomeSourceOut(src core.IncomeSource, pref core.CurrencyPreference) incomeSourceResponse {
	return incomeSourceResponse{
		ID:        src.ID,
		Source:    src.Source,
		Amount:    moneyOut(src.Amount, pref),
		Frequency: string(src.Frequency),
		Date:      dateOut(src.Date),
	}
}

type incomeSummaryResponse struct {
	Sources      []incomeSourceResponse `json:"sources"`
	MonthlyTotal moneyDTO               `json:"monthly_total"`
}

type categoryBudgetResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Budget      moneyDTO `json:"budget"`
	Spent       moneyDTO `json:"spent"`
	Utilization int      `json:"utilization"`
	OverBudget  bool     `json:"over_budget"`
}

type budgetReportResponse struct {
	Categories    []categoryBudgetResponse `json:"categories"`
	TotalBudgeted moneyDTO                 `json:"total_budgeted"`
	TotalSpent    moneyDTO                 `json:"total_spent"`
	MonthlyIncome moneyDTO                 `json:"monthly_income"`
	Unbudgeted    moneyDTO                 `json:"unbudgeted"`
}

func budgetReportOut(report derive.BudgetReport, pref core.CurrencyPreference) budgetReportResponse {
	out := budgetReportResponse{
		Categories:    make([]categoryBudgetResponse, 0, len(report.Categories)),
		TotalBudgeted: moneyOut(report.TotalBudgeted, pref),
		TotalSpent:    moneyOut(report.TotalSpent, pref),
		MonthlyIncome: moneyOut(report.MonthlyIncome, pref),
		Unbudgeted:    moneyOut(report.Unbudgeted, pref),
	}
	for _, cb := range report.Categories {
		out.Categories = append(out.Categories, categoryBudgetResponse{
			ID:          cb.Category.ID,
			Name:        cb.Category.Name,
			Color:       cb.Category.Color,
			Budget:      moneyOut(cb.Category.Budget, pref),
			Spent:       moneyOut(cb.Spent, pref),
			Utilization: cb.Utilization,
			OverBudget:  cb.OverBudget,
		})
	}
	return out
}

type goalProgressResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	CurrentAmount moneyDTO `json:"current_amount"`
	TargetAmount  moneyDTO `json:"target_amount"`
	TargetDate    string   `json:"target_date"`
	Percent       int      `json:"percent"`
	Remaining     moneyDTO `json:"remaining"`
	DaysLeft      int      `json:"days_left"`
	Completed     bool     `json:"completed"`
}

func goalProgressOut(gp derive.GoalProgress, pref core.CurrencyPreference) goalProgressResponse {
	return goalProgressResponse{
		ID:            gp.Goal.ID,
		Name:          gp.Goal.Name,
		CurrentAmount: moneyOut(gp.Goal.CurrentAmount, pref),
		TargetAmount:  moneyOut(gp.Goal.TargetAmount, pref),
		TargetDate:    dateOut(gp.Goal.TargetDate),
		Percent:       gp.Percent,
		Remaining:     moneyOut(gp.Remaining, pref),
		DaysLeft:      gp.DaysLeft,
		Completed:     gp.Completed,
	}
}

type billResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Amount       moneyDTO `json:"amount"`
	Category     string   `json:"category"`
	DueDate      string   `json:"due_date"`
	Frequency    string   `json:"frequency"`
	ReminderDays int      `json:"reminder_days"`
	IsPaid       bool     `json:"is_paid"`
	AutoPay      bool     `json:"auto_pay"`
	State        string   `json:"state,omitempty"`
}

func billOut(b core.BillReminder, state derive.BillState, pref core.CurrencyPreference) billResponse {
	return billResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		Amount:       moneyOut(b.Amount, pref),
		Category:     b.Category,
		DueDate:      dateOut(b.EffectiveDueDate()),
		Frequency:    string(b.Frequency),
		ReminderDays: b.ReminderDays,
		IsPaid:       b.IsPaid,
		AutoPay:      b.AutoPay,
		State:        string(state),
	}
}

type upcomingBillsResponse struct {
	Bills []billResponse `json:"bills"`
	Total moneyDTO       `json:"total"`
}

type participantResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	AmountOwed moneyDTO `json:"amount_owed"`
	AmountPaid moneyDTO `json:"amount_paid"`
	IsSettled  bool     `json:"is_settled"`
}

type sharedExpenseResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	TotalAmount  moneyDTO              `json:"total_amount"`
	Category     string                `json:"category"`
	IsSettled    bool                  `json:"is_settled"`
	Participants []participantResponse `json:"participants"`
}

func sharedExpenseOut(e core.SharedExpense, pref core.CurrencyPreference) sharedExpenseResponse {
	out := sharedExpenseResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		TotalAmount:  moneyOut(e.TotalAmount, pref),
		Category:     e.Category,
		IsSettled:    e.IsSettled,
		Participants: make([]participantResponse, 0, len(e.Participants)),
	}
	for _, p := range e.Participants {
		out.Participants = append(out.Participants, participantResponse{
			ID:         p.ID,
			Email:      p.Email,
			AmountOwed: moneyOut(p.AmountOwed, pref),
			AmountPaid: moneyOut(p.AmountPaid, pref),
			IsSettled:  p.IsSettled,
		})
	}
	return out
}

type categoryStatResponse struct {
	Category   string   `json:"category"`
	Amount     moneyDTO `json:"amount"`
	Count      int      `json:"count"`
	Percentage float64  `json:"percentage"`
}

type trendPointResponse struct {
	Period   string   `json:"period"`
	Income   moneyDTO `json:"income"`
	Expenses moneyDTO `json:"expenses"`
	Net      moneyDTO `json:"net"`
}

type insightsResponse struct {
	TotalIncome   moneyDTO `json:"total_income"`
	TotalExpenses moneyDTO `json:"total_expenses"`
	NetSavings    moneyDTO `json:"net_savings"`
	TopCategory   string   `json:"top_category"`
	AvgDailySpend moneyDTO `json:"avg_daily_spend"`
}

type analyticsResponse struct {
	Period     string                 `json:"period"`
	Categories []categoryStatResponse `json:"categories"`
	Trend      []trendPointResponse   `json:"trend"`
	Insights   insightsResponse       `json:"insights"`
}

func analyticsOut(report derive.Report, pref core.CurrencyPreference) analyticsResponse {
	out := analyticsResponse{
		Period:     string(report.Period),
		Categories: make([]categoryStatResponse, 0, len(report.Categories)),
		Trend:      make([]trendPointResponse, 0, len(report.Trend)),
		Insights: insightsResponse{
			TotalIncome:   moneyOut(report.Insights.TotalIncome, pref),
			TotalExpenses: moneyOut(report.Insights.TotalExpenses, pref),
			NetSavings:    moneyOut(report.Insights.NetSavings, pref),
			TopCategory:   report.Insights.TopCategory,
			AvgDailySpend: moneyOut(report.Insights.AvgDailySpend, pref),
		},
	}
	for _, cs := range report.Categories {
		out.Categories = append(out.Categories, categoryStatResponse{
			Category:   cs.Category,
			Amount:     moneyOut(cs.Amount, pref),
			Count:      cs.Count,
			Percentage: cs.Percentage,
		})
	}
	for _, tp := range report.Trend {
		out.Trend = append(out.Trend, trendPointResponse{
			Period:   tp.Period,
			Income:   moneyOut(tp.Income, pref),
			Expenses: moneyOut(tp.Expenses, pref),
			Net:      moneyOut(tp.Net, pref),
		})
	}
	return out
}

type categoryAmountResponse struct {
	Name   string   `json:"name"`
	Amount moneyDTO `json:"amount"`
}

type monthlySummaryResponse struct {
	TotalIncome       moneyDTO                 `json:"total_income"`
	TotalExpenses     moneyDTO                 `json:"total_expenses"`
	GoalContributions moneyDTO                 `json:"goal_contributions"`
	TotalSavings      moneyDTO                 `json:"total_savings"`
	TopCategories     []categoryAmountResponse `json:"top_categories"`
}

func monthlySummaryOut(sum derive.MonthlySummary, pref core.CurrencyPreference) monthlySummaryResponse {
	out := monthlySummaryResponse{
		TotalIncome:       moneyOut(sum.TotalIncome, pref),
		TotalExpenses:     moneyOut(sum.TotalExpenses, pref),
		GoalContributions: moneyOut(sum.GoalContributions, pref),
		TotalSavings:      moneyOut(sum.TotalSavings, pref),
		TopCategories:     make([]categoryAmountResponse, 0, len(sum.TopCategories)),
	}
	for _, ca := range sum.TopCategories {
		out.TopCategories = append(out.TopCategories, categoryAmountResponse{
			Name:   ca.Name,
			Amount: moneyOut(ca.Amount, pref),
		})
	}
	return out
}

type currencyResponse struct {
	Code      string   `json:"code"`
	Symbol    string   `json:"symbol"`
	Supported []string `json:"supported,omitempty"`
}

func billViewsOut(views []services.BillView, pref core.CurrencyPreference) []billResponse {
	out := make([]billResponse, 0, len(views))
	for _, v := range views {
		out = append(out, billOut(v.Bill, v.State, pref))
	}
	return out
}
