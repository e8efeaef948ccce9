// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing all transactions, newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves all transactions with their categories.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	withCategories, err := uc.transactionRepo.FindAllWithCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(withCategories)),
	}
	for _, tc := range withCategories {
		output.Transactions = append(output.Transactions, toTransactionOutput(tc.Transaction, tc.Category))
	}

	return output, nil
}
