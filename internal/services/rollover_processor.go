package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finmate/internal/core"
	"finmate/internal/storage"
)

// RolloverProcessor advances paid recurring bills to their next
// occurrence so they re-enter the unpaid lifecycle.
type RolloverProcessor struct {
	storage *storage.SQLiteRepository
}

func NewRolloverProcessor(storage *storage.SQLiteRepository) *RolloverProcessor {
	return &RolloverProcessor{storage: storage}
}

// ProcessPaidBills rolls every paid recurring bill whose occurrence has
// passed. Running it twice on the same day is a no-op: a rolled bill's
// cursor already sits in the future.
func (p *RolloverProcessor) ProcessPaidBills(ctx context.Context, now time.Time) (int, error) {
	if p.storage == nil {
		return 0, fmt.Errorf("processor not properly initialized")
	}

	bills, err := p.storage.ListPaidRecurringBills(ctx)
	if err != nil {
		return 0, fmt.Errorf("list paid recurring bills: %w", err)
	}

	slog.InfoContext(ctx, "Processing bill rollover",
		"total_paid_recurring", len(bills),
		"processing_date", now.Format("2006-01-02"))

	day := core.DateOf(now)
	rolled := 0
	for _, bill := range bills {
		// Still in the current cycle: the paid flag keeps it quiet until
		// its occurrence passes.
		if bill.EffectiveDueDate().After(day.Time) {
			continue
		}

		roller, err := GetDueRoller(bill.Frequency)
		if err != nil {
			slog.ErrorContext(ctx, "Failed to resolve rollover strategy",
				"id", bill.ID,
				"frequency", bill.Frequency,
				"error", err)
			continue
		}

		next := roller.NextDue(bill.EffectiveDueDate(), now)
		if err := p.storage.RollBillForward(ctx, bill.ID, next); err != nil {
			slog.ErrorContext(ctx, "Failed to roll bill forward",
				"id", bill.ID,
				"error", err)
			continue
		}
		rolled++
	}

	slog.InfoContext(ctx, "Bill rollover complete", "rolled", rolled)
	return rolled, nil
}
