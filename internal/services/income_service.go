package services

import (
	"context"
	"fmt"

	"finmate/internal/core"
	"finmate/internal/derive"
	"finmate/internal/storage"

	"github.com/google/uuid"
)

// IncomeService manages income sources and their monthly normalization.
type IncomeService struct {
	storage *storage.SQLiteRepository
}

func NewIncomeService(storage *storage.SQLiteRepository) *IncomeService {
	return &IncomeService{storage: storage}
}

func (s *IncomeService) Create(ctx context.Context, src core.IncomeSource) (core.IncomeSource, error) {
	if err := src.Validate(); err != nil {
		return core.IncomeSource{}, err
	}
	if src.ID == "" {
		src.ID = uuid.NewString()
	}
	return s.storage.CreateIncomeSource(ctx, src)
}

func (s *IncomeService) Delete(ctx context.Context, userID, id string) error {
	return s.storage.DeleteIncomeSource(ctx, userID, id)
}

// Summary returns the sources together with their monthly-equivalent
// total.
func (s *IncomeService) Summary(ctx context.Context, userID string) ([]core.IncomeSource, core.Money, error) {
	sources, err := s.storage.ListIncomeSources(ctx, userID)
	if err != nil {
		return nil, core.Money{}, fmt.Errorf("list income sources: %w", err)
	}
	return sources, derive.MonthlyIncome(sources), nil
}
