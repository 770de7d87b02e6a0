package derive

import (
	"math"
	"time"

	"finmate/internal/core"
)

// GoalProgress is the display-ready view of a savings goal.
type GoalProgress struct {
	Goal      core.Goal
	Percent   int // round(current/target*100), capped at 100
	Remaining core.Money
	DaysLeft  int // ceil days to target date, floored at 0
	Completed bool
}

// BuildGoalProgress derives progress for a single goal against an
// explicit "today".
func BuildGoalProgress(g core.Goal, today time.Time) GoalProgress {
	percent := 0
	if g.TargetAmount.Cents > 0 {
		percent = int(math.Round(float64(g.CurrentAmount.Cents) / float64(g.TargetAmount.Cents) * 100))
		if percent > 100 {
			percent = 100
		}
	}
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.Cents < 0 {
		remaining.Cents = 0
	}
	return GoalProgress{
		Goal:      g,
		Percent:   percent,
		Remaining: remaining,
		DaysLeft:  DaysUntil(g.TargetDate, today),
		Completed: g.CurrentAmount.Cents >= g.TargetAmount.Cents,
	}
}

// DaysUntil returns ceil((target - today) / 1 day), never negative.
// A target in the past yields 0, signaling due/overdue to callers.
func DaysUntil(target core.Date, today time.Time) int {
	diff := target.Sub(core.DateOf(today).Time)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Deposit applies a fund-add to a goal. The new amount is clamped to the
// target; crossing from below the target to exactly the target is the
// completion event, reported exactly once so the caller can surface a
// one-time notification. Deposits into an already-complete goal and
// non-positive amounts are rejected with no state change.
func Deposit(g core.Goal, amount core.Money) (updated core.Goal, completed bool, err error) {
	if amount.Cents <= 0 {
		return g, false, core.ErrInvalidAmount
	}
	if g.CurrentAmount.Cents >= g.TargetAmount.Cents {
		return g, false, core.ErrGoalComplete
	}
	next := g.CurrentAmount.Cents + amount.Cents
	if next > g.TargetAmount.Cents {
		next = g.TargetAmount.Cents
	}
	updated = g
	updated.CurrentAmount = core.Money{Cents: next}
	return updated, next == g.TargetAmount.Cents, nil
}
