// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// GoalOutput represents a goal in use case outputs.
// Progress is the display percentage, clamped to [0, 100]; the amounts
// themselves are never clamped.
type GoalOutput struct {
	ID                  uuid.UUID
	Title               string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            time.Time
	MonthlyContribution decimal.Decimal
	Progress            float64
}

// toGoalOutput converts a goal entity to its output form.
func toGoalOutput(g *entity.Goal) *GoalOutput {
	return &GoalOutput{
		ID:                  g.ID,
		Title:               g.Title,
		TargetAmount:        g.TargetAmount,
		CurrentAmount:       g.CurrentAmount,
		Deadline:            g.Deadline,
		MonthlyContribution: g.MonthlyContribution,
		Progress:            g.Progress(),
	}
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing all goals.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute retrieves all goals.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, toGoalOutput(g))
	}

	return output, nil
}
