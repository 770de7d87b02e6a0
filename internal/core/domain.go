package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// Transaction kinds. Stored amounts are always non-negative; the
	// direction of money is carried by the kind, never by the sign.
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

const (
	// Income source pay cadences.
	Weekly   PayFrequency = "Weekly"
	BiWeekly PayFrequency = "Bi-weekly"
	Monthly  PayFrequency = "Monthly"
	Annually PayFrequency = "Annually"
)

const (
	// Bill recurrence cadences.
	BillOneTime BillFrequency = "one-time"
	BillWeekly  BillFrequency = "weekly"
	BillMonthly BillFrequency = "monthly"
	BillYearly  BillFrequency = "yearly"
)

type (
	TransactionKind string
	PayFrequency    string
	BillFrequency   string

	// Date is a calendar day; the time-of-day portion is always midnight UTC.
	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	Transaction struct {
		ID          string
		UserID      string
		Description string
		Amount      Money
		Category    string
		Kind        TransactionKind
		Date        Date
		CreatedAt   time.Time
	}

	IncomeSource struct {
		ID        string
		UserID    string
		Source    string
		Amount    Money
		Frequency PayFrequency
		Date      Date
	}

	BudgetCategory struct {
		ID     string
		UserID string
		Name   string // join key against Transaction.Category, case-sensitive
		Budget Money
		Spent  Money // derived; recomputed from transactions on every read
		Color  string
	}

	Goal struct {
		ID            string
		UserID        string
		Name          string
		CurrentAmount Money
		TargetAmount  Money
		TargetDate    Date
	}

	BillReminder struct {
		ID           string
		UserID       string
		Title        string
		Description  string
		Amount       Money
		Category     string
		DueDate      Date
		NextDueDate  Date // recurrence cursor; zero when not yet rolled
		Frequency    BillFrequency
		ReminderDays int
		IsPaid       bool
		AutoPay      bool
	}

	SharedExpense struct {
		ID           string
		CreatedBy    string
		Title        string
		Description  string
		TotalAmount  Money
		Category     string
		IsSettled    bool
		CreatedAt    time.Time
		Participants []ExpenseParticipant
	}

	ExpenseParticipant struct {
		ID         string
		ExpenseID  string
		Email      string
		AmountOwed Money
		AmountPaid Money
		IsSettled  bool
	}

	// CurrencyPreference is a display-only formatting parameter.
	CurrencyPreference struct {
		Code   string
		Symbol string
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEmptyDescription   = errors.New("empty description")
	ErrEmptyCategory      = errors.New("empty category")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrInvalidFrequency   = errors.New("invalid frequency")
	ErrGoalComplete       = errors.New("goal already complete")
	ErrEmptyName          = errors.New("empty name")
	ErrInvalidReminderDay = errors.New("invalid reminder days")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// IsEmpty reports whether the date is unset (for optional dates such as
// a bill's recurrence cursor).
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

func (k TransactionKind) Validate() error {
	switch k {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidKind
	}
}

func (f PayFrequency) Valid() bool {
	switch f {
	case Weekly, BiWeekly, Monthly, Annually:
		return true
	default:
		return false
	}
}

func (f BillFrequency) Valid() bool {
	switch f {
	case BillOneTime, BillWeekly, BillMonthly, BillYearly:
		return true
	default:
		return false
	}
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return t.Kind.Validate()
}

func (s IncomeSource) Validate() error {
	if len(strings.TrimSpace(s.Source)) == 0 {
		return ErrEmptyName
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	if !s.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	return s.Date.Validate()
}

func (c BudgetCategory) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return c.Budget.Validate()
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyName
	}
	if err := g.TargetAmount.Validate(); err != nil {
		return err
	}
	if g.CurrentAmount.Cents < 0 {
		return ErrInvalidAmount
	}
	return g.TargetDate.Validate()
}

func (b BillReminder) Validate() error {
	if len(strings.TrimSpace(b.Title)) == 0 {
		return ErrEmptyName
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if err := b.DueDate.Validate(); err != nil {
		return err
	}
	if !b.Frequency.Valid() {
		return ErrInvalidFrequency
	}
	if b.ReminderDays < 0 || b.ReminderDays > 30 {
		return ErrInvalidReminderDay
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

func (e SharedExpense) Validate() error {
	if len(strings.TrimSpace(e.Title)) == 0 {
		return ErrEmptyName
	}
	if err := e.TotalAmount.Validate(); err != nil {
		return err
	}
	for _, p := range e.Participants {
		if strings.TrimSpace(p.Email) == "" {
			return ErrEmptyName
		}
		if p.AmountOwed.Cents < 0 {
			return ErrInvalidAmount
		}
	}
	return nil
}

// EffectiveDueDate returns the recurrence cursor when present, the
// original due date otherwise.
func (b BillReminder) EffectiveDueDate() Date {
	if !b.NextDueDate.IsEmpty() {
		return b.NextDueDate
	}
	return b.DueDate
}
