package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finmate/internal/amqp"
	"finmate/internal/core"
	"finmate/internal/derive"
	"finmate/internal/storage"

	"github.com/google/uuid"
)

// BillView pairs a stored bill with its derived urgency state.
type BillView struct {
	Bill  core.BillReminder
	State derive.BillState
}

// BillService manages bill reminders, their classification, and the
// mark-paid flow.
type BillService struct {
	storage      *storage.SQLiteRepository
	transactions *TransactionService
	amqpClient   *amqp.Client
}

func NewBillService(storage *storage.SQLiteRepository, transactions *TransactionService, amqpClient *amqp.Client) *BillService {
	return &BillService{
		storage:      storage,
		transactions: transactions,
		amqpClient:   amqpClient,
	}
}

func (s *BillService) Create(ctx context.Context, b core.BillReminder) (core.BillReminder, error) {
	if err := b.Validate(); err != nil {
		return core.BillReminder{}, err
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return s.storage.CreateBillReminder(ctx, b)
}

func (s *BillService) Delete(ctx context.Context, userID, id string) error {
	return s.storage.DeleteBillReminder(ctx, userID, id)
}

// List classifies every bill against the given day.
func (s *BillService) List(ctx context.Context, userID string, today time.Time) ([]BillView, error) {
	bills, err := s.storage.ListBillReminders(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}

	views := make([]BillView, len(bills))
	for i, b := range bills {
		views[i] = BillView{Bill: b, State: derive.ClassifyBill(b, today)}
	}
	return views, nil
}

// Upcoming returns the unpaid bills due within the next 7 days and their
// summed amount.
func (s *BillService) Upcoming(ctx context.Context, userID string, today time.Time) ([]core.BillReminder, core.Money, error) {
	bills, err := s.storage.ListBillReminders(ctx, userID)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("list bills: %w", err)
	}

	due, total := derive.UpcomingBills(bills, today)
	return due, total, nil
}

// MarkPaid flips the paid flag, then records a matching expense
// transaction dated today. The two writes are deliberately not atomic:
// if the transaction insert fails the bill stays paid and the caller
// receives a PartialFailure naming both halves.
func (s *BillService) MarkPaid(ctx context.Context, userID, id string, today time.Time) (core.Transaction, error) {
	bill, err := s.storage.GetBillReminder(ctx, userID, id)
	if err != nil {
		return core.Transaction{}, err
	}

	if err := s.storage.MarkBillPaid(ctx, userID, id); err != nil {
		return core.Transaction{}, err
	}

	s.publishChange(ctx, amqp.NewChangeMessage(amqp.EntityBill, id, userID, amqp.ActionPaid))

	payment := core.Transaction{
		UserID:      userID,
		Description: "Bill Payment: " + bill.Title,
		Amount:      bill.Amount,
		Category:    bill.Category,
		Kind:        core.Expense,
		Date:        core.DateOf(today),
	}
	tx, err := s.transactions.Create(ctx, payment)
	if err != nil {
		return core.Transaction{}, &PartialFailure{
			Completed: "mark bill paid",
			Failed:    "record payment transaction",
			Err:       err,
		}
	}

	slog.InfoContext(ctx, "Bill payment recorded",
		"bill_id", id,
		"transaction_id", tx.ID,
		"amount_cents", tx.Amount.Cents)

	return tx, nil
}

func (s *BillService) publishChange(ctx context.Context, msg *amqp.ChangeMessage) {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping change message")
		return
	}
	if err := s.amqpClient.PublishChange(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change message",
			"entity", msg.Entity,
			"id", msg.ID,
			"error", err)
	}
}
