// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Categories are seeded once at startup and are read-only afterwards.
type CategoryRepository interface {
	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Seed inserts the given categories if the store is empty.
	Seed(ctx context.Context, categories []*entity.Category) error
}
