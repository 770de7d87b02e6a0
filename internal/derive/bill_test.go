package derive

import (
	"testing"
	"time"

	"finmate/internal/core"
)

func bill(due core.Date, reminderDays int, paid bool) core.BillReminder {
	return core.BillReminder{
		Title:        "Electric Bill",
		Amount:       core.Money{Cents: 3500},
		Category:     "Utilities",
		DueDate:      due,
		Frequency:    core.BillMonthly,
		ReminderDays: reminderDays,
		IsPaid:       paid,
	}
}

func TestClassifyBill(t *testing.T) {
	today := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		bill core.BillReminder
		want BillState
	}{
		{
			name: "paid overrides overdue date",
			bill: bill(core.NewDate(2025, 4, 1), 3, true),
			want: BillPaid,
		},
		{
			name: "past due date is overdue",
			bill: bill(core.NewDate(2025, 4, 19), 3, false),
			want: BillOverdue,
		},
		{
			name: "due today with lead time still due-today",
			bill: bill(core.NewDate(2025, 4, 20), 3, false),
			want: BillDueToday,
		},
		{
			name: "inside reminder window",
			bill: bill(core.NewDate(2025, 4, 22), 3, false),
			want: BillReminder,
		},
		{
			name: "reminder boundary day is still upcoming",
			bill: bill(core.NewDate(2025, 4, 23), 3, false),
			want: BillUpcoming,
		},
		{
			name: "far future is upcoming",
			bill: bill(core.NewDate(2025, 5, 15), 3, false),
			want: BillUpcoming,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyBill(tt.bill, today); got != tt.want {
				t.Errorf("ClassifyBill() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyBillPrefersRecurrenceCursor(t *testing.T) {
	today := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)
	b := bill(core.NewDate(2025, 3, 20), 3, false) // stale original due date
	b.NextDueDate = core.NewDate(2025, 4, 20)
	if got := ClassifyBill(b, today); got != BillDueToday {
		t.Errorf("ClassifyBill() = %s, want due-today from cursor", got)
	}
}

func TestUpcomingBills(t *testing.T) {
	today := time.Date(2025, 4, 20, 9, 0, 0, 0, time.UTC)
	bills := []core.BillReminder{
		bill(core.NewDate(2025, 4, 22), 3, false), // within 7 days
		bill(core.NewDate(2025, 4, 27), 3, false), // boundary, included
		bill(core.NewDate(2025, 4, 28), 3, false), // beyond horizon
		bill(core.NewDate(2025, 4, 24), 3, true),  // paid, excluded
		bill(core.NewDate(2025, 4, 10), 3, false), // overdue, included
	}

	due, total := UpcomingBills(bills, today)
	if len(due) != 3 {
		t.Fatalf("got %d upcoming bills, want 3", len(due))
	}
	if total.Cents != 3*3500 {
		t.Errorf("total = %d, want %d", total.Cents, 3*3500)
	}
}
