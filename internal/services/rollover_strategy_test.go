package services

import (
	"errors"
	"testing"
	"time"

	"finmate/internal/core"
)

func TestWeeklyRollerNextDue(t *testing.T) {
	after := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  core.Date
		want core.Date
	}{
		{
			name: "due in the past rolls past today",
			due:  core.NewDate(2025, 4, 1),
			want: core.NewDate(2025, 4, 22),
		},
		{
			name: "due today rolls a full week",
			due:  core.NewDate(2025, 4, 20),
			want: core.NewDate(2025, 4, 27),
		},
		{
			name: "future due is untouched",
			due:  core.NewDate(2025, 4, 25),
			want: core.NewDate(2025, 4, 25),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := (WeeklyRoller{}).NextDue(tt.due, after)
			if !got.Equal(tt.want.Time) {
				t.Errorf("NextDue() = %s, want %s", got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestMonthlyRollerNextDue(t *testing.T) {
	after := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	got := (MonthlyRoller{}).NextDue(core.NewDate(2025, 4, 15), after)
	want := core.NewDate(2025, 5, 15)
	if !got.Equal(want.Time) {
		t.Errorf("NextDue() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}

	// A bill several months stale rolls forward until it clears today.
	got = (MonthlyRoller{}).NextDue(core.NewDate(2025, 1, 15), after)
	if !got.Equal(want.Time) {
		t.Errorf("stale NextDue() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestYearlyRollerNextDue(t *testing.T) {
	after := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)

	got := (YearlyRoller{}).NextDue(core.NewDate(2025, 3, 1), after)
	want := core.NewDate(2026, 3, 1)
	if !got.Equal(want.Time) {
		t.Errorf("NextDue() = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestGetDueRoller(t *testing.T) {
	for _, freq := range []core.BillFrequency{core.BillWeekly, core.BillMonthly, core.BillYearly} {
		if _, err := GetDueRoller(freq); err != nil {
			t.Errorf("GetDueRoller(%s) error: %v", freq, err)
		}
	}

	if _, err := GetDueRoller(core.BillOneTime); err == nil {
		t.Error("one-time bills must not have a roller")
	}
	if _, err := GetDueRoller("fortnightly"); err == nil {
		t.Error("unknown frequency must not have a roller")
	}
}

func TestPartialFailureError(t *testing.T) {
	inner := errors.New("disk full")
	err := &PartialFailure{Completed: "mark bill paid", Failed: "record payment transaction", Err: inner}

	want := "mark bill paid succeeded but record payment transaction failed: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap() should expose the inner error")
	}
}
