// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

// SaveGoalInput represents the input for goal creation or edit.
// A nil ID creates a new goal; a non-nil ID replaces the fields of the
// existing goal while preserving its id.
type SaveGoalInput struct {
	ID                  *uuid.UUID
	Title               string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            time.Time
	MonthlyContribution decimal.Decimal
}

// SaveGoalOutput represents the output of saving a goal.
type SaveGoalOutput struct {
	Goal *GoalOutput
}

// SaveGoalUseCase handles goal edit-or-create logic.
type SaveGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewSaveGoalUseCase creates a new SaveGoalUseCase instance.
func NewSaveGoalUseCase(goalRepo adapter.GoalRepository) *SaveGoalUseCase {
	return &SaveGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal save.
func (uc *SaveGoalUseCase) Execute(ctx context.Context, input SaveGoalInput) (*SaveGoalOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalTitle,
			"title is required",
			domainerror.ErrEmptyGoalTitle,
		)
	}

	var goal *entity.Goal

	if input.ID != nil {
		existing, err := uc.goalRepo.FindByID(ctx, *input.ID)
		if err != nil {
			if errors.Is(err, domainerror.ErrGoalNotFound) {
				return nil, domainerror.NewGoalError(
					domainerror.ErrCodeGoalNotFound,
					"goal not found",
					domainerror.ErrGoalNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load goal: %w", err)
		}

		existing.Title = input.Title
		existing.TargetAmount = input.TargetAmount
		existing.CurrentAmount = input.CurrentAmount
		existing.Deadline = input.Deadline
		existing.MonthlyContribution = input.MonthlyContribution
		existing.UpdatedAt = time.Now().UTC()
		goal = existing
	} else {
		goal = entity.NewGoal(
			input.Title,
			input.TargetAmount,
			input.CurrentAmount,
			input.Deadline,
			input.MonthlyContribution,
		)
	}

	if err := uc.goalRepo.Save(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	return &SaveGoalOutput{Goal: toGoalOutput(goal)}, nil
}
