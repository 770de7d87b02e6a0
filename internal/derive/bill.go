package derive

import (
	"time"

	"finmate/internal/core"
)

// BillState classifies a bill's urgency for the current calendar day.
type BillState string

const (
	BillPaid     BillState = "paid"
	BillOverdue  BillState = "overdue"
	BillDueToday BillState = "due-today"
	BillReminder BillState = "reminder"
	BillUpcoming BillState = "upcoming"
)

// ClassifyBill derives a bill's state from (due date, reminder lead days,
// paid flag, today). The paid check runs first and overrides all date
// logic; then overdue, due-today, reminder, and finally the upcoming
// default. The recurrence cursor, when set, takes precedence over the
// original due date.
func ClassifyBill(b core.BillReminder, today time.Time) BillState {
	if b.IsPaid {
		return BillPaid
	}
	due := b.EffectiveDueDate()
	day := core.DateOf(today)
	switch {
	case due.Before(day.Time):
		return BillOverdue
	case due.Equal(day.Time):
		return BillDueToday
	case due.AddDate(0, 0, -b.ReminderDays).Before(day.Time):
		return BillReminder
	default:
		return BillUpcoming
	}
}

// UpcomingBills returns the unpaid bills whose effective due date falls
// within the next 7 days (overdue ones included), with their summed
// amount for the alert banner.
func UpcomingBills(bills []core.BillReminder, today time.Time) ([]core.BillReminder, core.Money) {
	horizon := core.DateOf(today).AddDate(0, 0, 7)
	var due []core.BillReminder
	var total core.Money
	for _, b := range bills {
		if b.IsPaid {
			continue
		}
		if !b.EffectiveDueDate().After(horizon) {
			due = append(due, b)
			total.Cents += b.Amount.Cents
		}
	}
	return due, total
}
