// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
// Deletion is idempotent: deleting an id that is not present leaves the
// collection unchanged and succeeds.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
