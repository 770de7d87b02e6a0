package http

import (
	"errors"
	"testing"

	"finmate/internal/core"
)

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := parseDate("2025-04-15")
		if err != nil {
			t.Fatalf("parseDate: %v", err)
		}
		if d.Format("2006-01-02") != "2025-04-15" {
			t.Errorf("got %v", d)
		}
	})

	for _, bad := range []string{"", "15/04/2025", "2025-13-01", "yesterday"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			if _, err := parseDate(bad); !errors.Is(err, core.ErrInvalidDate) {
				t.Errorf("parseDate(%q) err = %v, want ErrInvalidDate", bad, err)
			}
		})
	}
}

func TestBillRequestDefaultsReminderDays(t *testing.T) {
	req := billRequest{
		Title:     "Rent",
		Amount:    "800.00",
		Category:  "Housing",
		DueDate:   "2025-05-01",
		Frequency: "monthly",
	}
	bill, err := req.toCore("user-1")
	if err != nil {
		t.Fatalf("toCore: %v", err)
	}
	if bill.ReminderDays != 3 {
		t.Errorf("reminder days = %d, want 3", bill.ReminderDays)
	}

	zero := 0
	req.ReminderDays = &zero
	bill, err = req.toCore("user-1")
	if err != nil {
		t.Fatalf("toCore with explicit zero: %v", err)
	}
	if bill.ReminderDays != 0 {
		t.Errorf("explicit zero overridden to %d", bill.ReminderDays)
	}
}

func TestSharedExpenseRequestParticipantError(t *testing.T) {
	req := sharedExpenseRequest{
		Title:       "Taxi",
		TotalAmount: "30.00",
		Category:    "Transport",
		Participants: []participantRequest{
			{Email: "a@example.com", AmountOwed: "bogus"},
		},
	}
	if _, err := req.toCore("user-1"); !errors.Is(err, core.ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
}
