package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finmate/internal/core"
	"finmate/internal/derive"
	"finmate/internal/storage"

	"github.com/google/uuid"
)

// BudgetService builds budget reports from current data and maintains the
// persisted spent cache.
type BudgetService struct {
	storage *storage.SQLiteRepository
}

func NewBudgetService(storage *storage.SQLiteRepository) *BudgetService {
	return &BudgetService{storage: storage}
}

// CreateCategory validates and saves a budget category.
func (s *BudgetService) CreateCategory(ctx context.Context, cat core.BudgetCategory) (core.BudgetCategory, error) {
	if err := cat.Validate(); err != nil {
		return core.BudgetCategory{}, err
	}
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return s.storage.CreateBudgetCategory(ctx, cat)
}

func (s *BudgetService) DeleteCategory(ctx context.Context, userID, id string) error {
	return s.storage.DeleteBudgetCategory(ctx, userID, id)
}

// Report recomputes every category's spend from this month's expense
// transactions. Stored spent figures are ignored; deleting a transaction
// is reflected on the next call with no compensation logic.
func (s *BudgetService) Report(ctx context.Context, userID string, today time.Time) (derive.BudgetReport, error) {
	categories, err := s.storage.ListBudgetCategories(ctx, userID)
	if err != nil {
		return derive.BudgetReport{}, fmt.Errorf("list budget categories: %w", err)
	}

	monthStart := core.NewDate(today.Year(), int(today.Month()), 1)
	transactions, err := s.storage.ListTransactionsSince(ctx, userID, monthStart)
	if err != nil {
		return derive.BudgetReport{}, fmt.Errorf("list month transactions: %w", err)
	}

	sources, err := s.storage.ListIncomeSources(ctx, userID)
	if err != nil {
		return derive.BudgetReport{}, fmt.Errorf("list income sources: %w", err)
	}

	return derive.BuildBudgetReport(categories, transactions, derive.MonthlyIncome(sources)), nil
}

// RecomputeSpent refreshes the persisted spent cache for every category.
// Failures are logged per category; the cache is advisory and the next
// report ignores it anyway.
func (s *BudgetService) RecomputeSpent(ctx context.Context, userID string, today time.Time) error {
	report, err := s.Report(ctx, userID, today)
	if err != nil {
		return err
	}

	for _, cb := range report.Categories {
		if err := s.storage.SaveBudgetSpent(ctx, userID, cb.Category.ID, cb.Spent); err != nil {
			slog.ErrorContext(ctx, "Failed to persist spent figure",
				"category_id", cb.Category.ID,
				"error", err)
		}
	}
	return nil
}
