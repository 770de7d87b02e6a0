package services

import (
	"context"
	"errors"
	"fmt"

	"finmate/internal/core"
	"finmate/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNoParticipants = errors.New("shared expense needs at least one participant")
	ErrShareMismatch  = errors.New("participant shares do not sum to total")
)

// SharedExpenseService manages group expenses split across participants.
type SharedExpenseService struct {
	storage *storage.SQLiteRepository
}

func NewSharedExpenseService(storage *storage.SQLiteRepository) *SharedExpenseService {
	return &SharedExpenseService{storage: storage}
}

// Create validates the split and saves expense plus participants
// atomically. Owed shares must cover the total exactly.
func (s *SharedExpenseService) Create(ctx context.Context, e core.SharedExpense) (core.SharedExpense, error) {
	if err := e.Validate(); err != nil {
		return core.SharedExpense{}, err
	}
	if len(e.Participants) == 0 {
		return core.SharedExpense{}, ErrNoParticipants
	}

	var owed int64
	for i := range e.Participants {
		if e.Participants[i].ID == "" {
			e.Participants[i].ID = uuid.NewString()
		}
		owed += e.Participants[i].AmountOwed.Cents
	}
	if owed != e.TotalAmount.Cents {
		return core.SharedExpense{}, fmt.Errorf("%w: shares %d cents, total %d cents", ErrShareMismatch, owed, e.TotalAmount.Cents)
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return s.storage.CreateSharedExpense(ctx, e)
}

func (s *SharedExpenseService) List(ctx context.Context, userID string) ([]core.SharedExpense, error) {
	return s.storage.ListSharedExpenses(ctx, userID)
}

// SettleParticipant marks one share fully paid. Only the expense
// creator may settle shares. The parent expense settles automatically
// when its last share does.
func (s *SharedExpenseService) SettleParticipant(ctx context.Context, userID, expenseID, participantID string) error {
	return s.storage.SettleParticipant(ctx, userID, expenseID, participantID)
}

func (s *SharedExpenseService) Delete(ctx context.Context, userID, id string) error {
	return s.storage.DeleteSharedExpense(ctx, userID, id)
}

// SplitEvenly divides a total across n participants, spreading any
// remainder cents over the first shares so the sum is exact.
func SplitEvenly(total core.Money, emails []string) []core.ExpenseParticipant {
	n := int64(len(emails))
	if n == 0 {
		return nil
	}
	base := total.Cents / n
	remainder := total.Cents % n

	participants := make([]core.ExpenseParticipant, len(emails))
	for i, email := range emails {
		share := base
		if int64(i) < remainder {
			share++
		}
		participants[i] = core.ExpenseParticipant{
			Email:      email,
			AmountOwed: core.Money{Cents: share},
		}
	}
	return participants
}
