// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Save inserts the investment when its id is unknown, or replaces every
	// field of the stored investment with the same id.
	Save(ctx context.Context, investment *entity.Investment) error

	// FindByID retrieves an investment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// FindAll retrieves all investments ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Investment, error)

	// Delete removes an investment by id.
	Delete(ctx context.Context, id uuid.UUID) error
}
