// This file implements the Strategy Pattern for bill recurrence rollover.
// Each recurring frequency has its own roller that computes the next
// occurrence after a given day.
package services

import (
	"fmt"
	"time"

	"finmate/internal/core"
)

// DueRoller is the strategy interface for advancing a bill's due date to
// its next occurrence.
type DueRoller interface {
	// NextDue returns the first occurrence strictly after the given day,
	// starting from the bill's current effective due date.
	NextDue(due core.Date, after time.Time) core.Date
}

// WeeklyRoller advances in 7-day steps.
type WeeklyRoller struct{}

func (WeeklyRoller) NextDue(due core.Date, after time.Time) core.Date {
	day := core.DateOf(after)
	next := due
	for !next.After(day.Time) {
		next = core.DateOf(next.AddDate(0, 0, 7))
	}
	return next
}

// MonthlyRoller advances one calendar month at a time. time.AddDate
// normalizes short months, so Jan 31 rolls to Mar 3 rather than
// clamping; rollover keeps the bill cycling either way.
type MonthlyRoller struct{}

func (MonthlyRoller) NextDue(due core.Date, after time.Time) core.Date {
	day := core.DateOf(after)
	next := due
	for !next.After(day.Time) {
		next = core.DateOf(next.AddDate(0, 1, 0))
	}
	return next
}

// YearlyRoller advances one year at a time.
type YearlyRoller struct{}

func (YearlyRoller) NextDue(due core.Date, after time.Time) core.Date {
	day := core.DateOf(after)
	next := due
	for !next.After(day.Time) {
		next = core.DateOf(next.AddDate(1, 0, 0))
	}
	return next
}

// dueRollers maps recurring frequencies to their rollers. One-time bills
// are absent on purpose: they never roll.
var dueRollers = map[core.BillFrequency]DueRoller{
	core.BillWeekly:  WeeklyRoller{},
	core.BillMonthly: MonthlyRoller{},
	core.BillYearly:  YearlyRoller{},
}

// GetDueRoller returns the roller for a recurring frequency. One-time and
// unknown frequencies return an error.
func GetDueRoller(frequency core.BillFrequency) (DueRoller, error) {
	roller, ok := dueRollers[frequency]
	if !ok {
		return nil, fmt.Errorf("no rollover for frequency: %s", frequency)
	}
	return roller, nil
}

// RegisterDueRoller registers a roller for a new frequency without
// touching the existing ones.
func RegisterDueRoller(frequency core.BillFrequency, roller DueRoller) {
	dueRollers[frequency] = roller
}
