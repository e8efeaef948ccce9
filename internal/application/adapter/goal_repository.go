// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Save inserts the goal when its id is unknown, or replaces every field
	// of the stored goal with the same id.
	Save(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindAll retrieves all goals ordered by deadline.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// Delete removes a goal by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
