package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finmate/internal/core"
)

const maxBodySize = 1 << 20 // 1 MiB

// Request payloads carry amounts as decimal strings and dates as
// "2006-01-02". Parsing to cents happens here, once, at the edge.

type transactionRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Kind        string `json:"kind"`
	Date        string `json:"date"`
}

type incomeSourceRequest struct {
	Source    string `json:"source"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	Date      string `json:"date"`
}

type budgetCategoryRequest struct {
	Name   string `json:"name"`
	Budget string `json:"budget"`
	Color  string `json:"color"`
}

type goalRequest struct {
	Name         string `json:"name"`
	TargetAmount string `json:"target_amount"`
	TargetDate   string `json:"target_date"`
}

type depositRequest struct {
	Amount string `json:"amount"`
}

type billRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Category     string `json:"category"`
	DueDate      string `json:"due_date"`
	Frequency    string `json:"frequency"`
	ReminderDays *int   `json:"reminder_days"`
	AutoPay      bool   `json:"auto_pay"`
}

type sharedExpenseRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	TotalAmount  string               `json:"total_amount"`
	Category     string               `json:"category"`
	Participants []participantRequest `json:"participants"`
	SplitEvenly  []string             `json:"split_evenly"` // emails; mutually exclusive with participants
}

type participantRequest struct {
	Email      string `json:"email"`
	AmountOwed string `json:"amount_owed"`
}

type currencyRequest struct {
	Code string `json:"code"`
}

func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

func parseAmount(s string) (core.Money, error) {
	cents, err := core.ParseDecimalToCents(s)
	if err != nil {
		return core.Money{}, err
	}
	return core.Money{Cents: cents}, nil
}

func parseDate(s string) (core.Date, error) {
	if s == "" {
		return core.Date{}, core.ErrInvalidDate
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return core.Date{}, core.ErrInvalidDate
	}
	return core.DateOf(t), nil
}

func (req transactionRequest) toCore(userID string) (core.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		UserID:      userID,
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		Kind:        core.TransactionKind(req.Kind),
		Date:        date,
	}, nil
}

func (req incomeSourceRequest) toCore(userID string) (core.IncomeSource, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.IncomeSource{}, err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return core.IncomeSource{}, err
	}
	return core.IncomeSource{
		UserID:    userID,
		Source:    req.Source,
		Amount:    amount,
		Frequency: core.PayFrequency(req.Frequency),
		Date:      date,
	}, nil
}

func (req budgetCategoryRequest) toCore(userID string) (core.BudgetCategory, error) {
	budget, err := parseAmount(req.Budget)
	if err != nil {
		return core.BudgetCategory{}, err
	}
	return core.BudgetCategory{
		UserID: userID,
		Name:   req.Name,
		Budget: budget,
		Color:  req.Color,
	}, nil
}

func (req goalRequest) toCore(userID string) (core.Goal, error) {
	target, err := parseAmount(req.TargetAmount)
	if err != nil {
		return core.Goal{}, err
	}
	date, err := parseDate(req.TargetDate)
	if err != nil {
		return core.Goal{}, err
	}
	return core.Goal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: target,
		TargetDate:   date,
	}, nil
}

func (req billRequest) toCore(userID string) (core.BillReminder, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return core.BillReminder{}, err
	}
	date, err := parseDate(req.DueDate)
	if err != nil {
		return core.BillReminder{}, err
	}
	reminderDays := 3
	if req.ReminderDays != nil {
		reminderDays = *req.ReminderDays
	}
	return core.BillReminder{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Amount:       amount,
		Category:     req.Category,
		DueDate:      date,
		Frequency:    core.BillFrequency(req.Frequency),
		ReminderDays: reminderDays,
		AutoPay:      req.AutoPay,
	}, nil
}

func (req sharedExpenseRequest) toCore(userID string) (core.SharedExpense, error) {
	total, err := parseAmount(req.TotalAmount)
	if err != nil {
		return core.SharedExpense{}, err
	}

	expense := core.SharedExpense{
		CreatedBy:   userID,
		Title:       req.Title,
		Description: req.Description,
		TotalAmount: total,
		Category:    req.Category,
	}

	for _, p := range req.Participants {
		owed, err := parseAmount(p.AmountOwed)
		if err != nil {
			return core.SharedExpense{}, fmt.Errorf("participant %s: %w", p.Email, err)
		}
		expense.Participants = append(expense.Participants, core.ExpenseParticipant{
			Email:      p.Email,
			AmountOwed: owed,
		})
	}
	return expense, nil
}
