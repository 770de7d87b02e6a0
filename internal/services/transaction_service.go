// Package services orchestrates storage, derivation, and messaging.
//
// Writes go to SQLite first; change messages are published best-effort
// afterwards. A broker outage never fails a request, it only delays the
// derived-figure refresh.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"finmate/internal/amqp"
	"finmate/internal/core"
	"finmate/internal/storage"

	"github.com/google/uuid"
)

// TransactionService orchestrates transaction writes across SQLite and AMQP.
type TransactionService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewTransactionService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *TransactionService {
	return &TransactionService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

// Create validates and saves a transaction, then publishes a change
// message.
func (s *TransactionService) Create(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	saved, err := s.storage.CreateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	s.publishChange(ctx, amqp.NewChangeMessage(amqp.EntityTransaction, saved.ID, saved.UserID, amqp.ActionCreated))
	return saved, nil
}

// Delete removes a transaction and publishes a change message.
func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	if err := s.storage.DeleteTransaction(ctx, userID, id); err != nil {
		return err
	}

	s.publishChange(ctx, amqp.NewChangeMessage(amqp.EntityTransaction, id, userID, amqp.ActionDeleted))
	return nil
}

// List returns the user's transactions, optionally filtered by a search
// term matching description or category.
func (s *TransactionService) List(ctx context.Context, userID, search string) ([]core.Transaction, error) {
	if search != "" {
		return s.storage.SearchTransactions(ctx, userID, search)
	}
	return s.storage.ListTransactions(ctx, userID)
}

func (s *TransactionService) Get(ctx context.Context, userID, id string) (core.Transaction, error) {
	return s.storage.GetTransaction(ctx, userID, id)
}

func (s *TransactionService) publishChange(ctx context.Context, msg *amqp.ChangeMessage) {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping change message")
		return
	}
	if err := s.amqpClient.PublishChange(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change message",
			"entity", msg.Entity,
			"id", msg.ID,
			"error", err)
		// Request still succeeds: the record is saved locally.
	}
}
