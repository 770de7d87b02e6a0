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

// GoalService manages savings goals and their progress derivation.
type GoalService struct {
	storage    *storage.SQLiteRepository
	amqpClient *amqp.Client
}

func NewGoalService(storage *storage.SQLiteRepository, amqpClient *amqp.Client) *GoalService {
	return &GoalService{
		storage:    storage,
		amqpClient: amqpClient,
	}
}

func (s *GoalService) Create(ctx context.Context, g core.Goal) (core.Goal, error) {
	if err := g.Validate(); err != nil {
		return core.Goal{}, err
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return s.storage.CreateGoal(ctx, g)
}

func (s *GoalService) Delete(ctx context.Context, userID, id string) error {
	return s.storage.DeleteGoal(ctx, userID, id)
}

// ListProgress derives progress for every goal against the given day.
func (s *GoalService) ListProgress(ctx context.Context, userID string, today time.Time) ([]derive.GoalProgress, error) {
	goals, err := s.storage.ListGoals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	progress := make([]derive.GoalProgress, len(goals))
	for i, g := range goals {
		progress[i] = derive.BuildGoalProgress(g, today)
	}
	return progress, nil
}

// Deposit adds funds to a goal. The balance clamps at the target; the
// completion event fires exactly once, on the deposit that reaches it.
func (s *GoalService) Deposit(ctx context.Context, userID, id string, amount core.Money, today time.Time) (derive.GoalProgress, error) {
	goal, err := s.storage.GetGoal(ctx, userID, id)
	if err != nil {
		return derive.GoalProgress{}, err
	}

	updated, completed, err := derive.Deposit(goal, amount)
	if err != nil {
		return derive.GoalProgress{}, err
	}

	if err := s.storage.SaveGoalAmount(ctx, userID, id, updated.CurrentAmount); err != nil {
		return derive.GoalProgress{}, fmt.Errorf("save goal amount: %w", err)
	}

	slog.InfoContext(ctx, "Goal deposit recorded",
		"goal_id", id,
		"user_id", userID,
		"amount_cents", amount.Cents,
		"current_cents", updated.CurrentAmount.Cents,
		"completed", completed)

	if completed {
		s.publishChange(ctx, amqp.NewChangeMessage(amqp.EntityGoal, id, userID, amqp.ActionCompleted))
	}

	return derive.BuildGoalProgress(updated, today), nil
}

func (s *GoalService) publishChange(ctx context.Context, msg *amqp.ChangeMessage) {
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
