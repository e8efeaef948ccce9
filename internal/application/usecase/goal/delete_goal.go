// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if err := uc.goalRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}
