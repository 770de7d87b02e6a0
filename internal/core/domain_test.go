package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "tx-1",
		UserID:      "user-1",
		Description: "Groceries at the market",
		Amount:      Money{Cents: 4250},
		Category:    "Food",
		Kind:        Expense,
		Date:        NewDate(2025, 4, 10),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{name: "valid", mutate: func(*Transaction) {}},
		{
			name:    "missing date",
			mutate:  func(tx *Transaction) { tx.Date = Date{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "blank description",
			mutate:  func(tx *Transaction) { tx.Description = "   " },
			wantErr: ErrEmptyDescription,
		},
		{
			name:    "zero amount",
			mutate:  func(tx *Transaction) { tx.Amount = Money{} },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(tx *Transaction) { tx.Amount = Money{Cents: -100} },
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "blank category",
			mutate:  func(tx *Transaction) { tx.Category = "" },
			wantErr: ErrEmptyCategory,
		},
		{
			name:    "unknown kind",
			mutate:  func(tx *Transaction) { tx.Kind = "transfer" },
			wantErr: ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransactionValidateDescriptionTooLong(t *testing.T) {
	tx := validTransaction()
	tx.Description = strings.Repeat("x", 201)
	if err := tx.Validate(); err == nil {
		t.Error("expected error for a 201-character description")
	}
}

func TestIncomeSourceValidate(t *testing.T) {
	src := IncomeSource{
		Source:    "Salary",
		Amount:    Money{Cents: 250000},
		Frequency: Monthly,
		Date:      NewDate(2025, 4, 1),
	}
	if err := src.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	src.Frequency = "Daily"
	if err := src.Validate(); !errors.Is(err, ErrInvalidFrequency) {
		t.Errorf("Validate() error = %v, want ErrInvalidFrequency", err)
	}
}

func TestBillReminderValidate(t *testing.T) {
	valid := BillReminder{
		Title:        "Rent",
		Amount:       Money{Cents: 90000},
		Category:     "Housing",
		DueDate:      NewDate(2025, 5, 1),
		Frequency:    BillMonthly,
		ReminderDays: 3,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*BillReminder)
		wantErr error
	}{
		{
			name:    "blank title",
			mutate:  func(b *BillReminder) { b.Title = "" },
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown frequency",
			mutate:  func(b *BillReminder) { b.Frequency = "daily" },
			wantErr: ErrInvalidFrequency,
		},
		{
			name:    "negative reminder days",
			mutate:  func(b *BillReminder) { b.ReminderDays = -1 },
			wantErr: ErrInvalidReminderDay,
		},
		{
			name:    "reminder days over cap",
			mutate:  func(b *BillReminder) { b.ReminderDays = 31 },
			wantErr: ErrInvalidReminderDay,
		},
		{
			name:    "blank category",
			mutate:  func(b *BillReminder) { b.Category = " " },
			wantErr: ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			if err := b.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGoalValidate(t *testing.T) {
	g := Goal{
		Name:          "Emergency Fund",
		CurrentAmount: Money{Cents: 0},
		TargetAmount:  Money{Cents: 100000},
		TargetDate:    NewDate(2025, 12, 31),
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}

	g.CurrentAmount = Money{Cents: -1}
	if err := g.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Validate() error = %v, want ErrInvalidAmount", err)
	}
}

func TestEffectiveDueDate(t *testing.T) {
	b := BillReminder{DueDate: NewDate(2025, 4, 1)}
	if got := b.EffectiveDueDate(); !got.Equal(NewDate(2025, 4, 1).Time) {
		t.Errorf("EffectiveDueDate() = %v, want original due date", got)
	}

	b.NextDueDate = NewDate(2025, 5, 1)
	if got := b.EffectiveDueDate(); !got.Equal(NewDate(2025, 5, 1).Time) {
		t.Errorf("EffectiveDueDate() = %v, want recurrence cursor", got)
	}
}

func TestDateOf(t *testing.T) {
	stamp := time.Date(2025, 4, 20, 17, 45, 12, 999, time.UTC)
	d := DateOf(stamp)
	if !d.Equal(NewDate(2025, 4, 20).Time) {
		t.Errorf("DateOf() = %v, want midnight of the same day", d)
	}
}
