package services

import (
	"context"
	"fmt"
	"time"

	"finmate/internal/core"
	"finmate/internal/derive"
	"finmate/internal/storage"
)

// AnalyticsService reduces a user's transaction history into breakdowns,
// trends, and monthly summaries.
type AnalyticsService struct {
	storage *storage.SQLiteRepository
}

func NewAnalyticsService(storage *storage.SQLiteRepository) *AnalyticsService {
	return &AnalyticsService{storage: storage}
}

// Report analyzes the transactions inside the period ending today.
func (s *AnalyticsService) Report(ctx context.Context, userID string, period derive.Period, today time.Time) (derive.Report, error) {
	if !period.Valid() {
		return derive.Report{}, fmt.Errorf("unsupported period: %s", period)
	}

	start := core.DateOf(period.Start(today))
	transactions, err := s.storage.ListTransactionsSince(ctx, userID, start)
	if err != nil {
		return derive.Report{}, fmt.Errorf("list period transactions: %w", err)
	}

	return derive.Analyze(transactions, period), nil
}

// MonthlySummary builds the current month's report figures.
func (s *AnalyticsService) MonthlySummary(ctx context.Context, userID string, today time.Time) (derive.MonthlySummary, error) {
	monthStart := core.NewDate(today.Year(), int(today.Month()), 1)
	transactions, err := s.storage.ListTransactionsSince(ctx, userID, monthStart)
	if err != nil {
		return derive.MonthlySummary{}, fmt.Errorf("list month transactions: %w", err)
	}

	sources, err := s.storage.ListIncomeSources(ctx, userID)
	if err != nil {
		return derive.MonthlySummary{}, fmt.Errorf("list income sources: %w", err)
	}

	goals, err := s.storage.ListGoals(ctx, userID)
	if err != nil {
		return derive.MonthlySummary{}, fmt.Errorf("list goals: %w", err)
	}

	return derive.BuildMonthlySummary(transactions, sources, goals), nil
}
