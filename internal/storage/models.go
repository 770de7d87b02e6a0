package storage

import "time"

// Row types mirror the table schema one to one. Dates travel as
// "2006-01-02" strings; amounts are integer cents.

type Transaction struct {
	ID          string
	UserID      string
	Description string
	AmountCents int64
	Category    string
	Kind        string
	TxDate      string
	CreatedAt   time.Time
}

type IncomeSource struct {
	ID           string
	UserID       string
	Source       string
	AmountCents  int64
	Frequency    string
	ReceivedDate string
	CreatedAt    time.Time
}

type BudgetCategory struct {
	ID          string
	UserID      string
	Name        string
	BudgetCents int64
	SpentCents  int64
	Color       string
	CreatedAt   time.Time
}

type Goal struct {
	ID           string
	UserID       string
	Name         string
	CurrentCents int64
	TargetCents  int64
	TargetDate   string
	CreatedAt    time.Time
}

type BillReminder struct {
	ID           string
	UserID       string
	Title        string
	Description  string
	AmountCents  int64
	Category     string
	DueDate      string
	NextDueDate  string
	Frequency    string
	ReminderDays int64
	IsPaid       bool
	AutoPay      bool
	CreatedAt    time.Time
}

type SharedExpense struct {
	ID          string
	CreatedBy   string
	Title       string
	Description string
	TotalCents  int64
	Category    string
	IsSettled   bool
	CreatedAt   time.Time
}

type ExpenseParticipant struct {
	ID              string
	ExpenseID       string
	Email           string
	AmountOwedCents int64
	AmountPaidCents int64
	IsSettled       bool
}

type CurrencyPreference struct {
	UserID    string
	Code      string
	Symbol    string
	UpdatedAt time.Time
}
