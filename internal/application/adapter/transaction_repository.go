// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Transactions are created and deleted but never updated in place.
type TransactionRepository interface {
	// Create persists a new transaction together with its line items.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves all transactions ordered by date descending.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindAllWithCategory retrieves all transactions with their categories,
	// ordered by date descending. Orphaned category ids yield a nil Category.
	FindAllWithCategory(ctx context.Context) ([]*entity.TransactionWithCategory, error)

	// FindRecent retrieves the most recent transactions up to limit,
	// ordered by date descending.
	FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error)

	// Delete removes a transaction by id. Deleting an id that is not present
	// is a no-op, not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
