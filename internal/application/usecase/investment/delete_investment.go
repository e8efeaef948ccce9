// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// DeleteInvestmentInput represents the input for investment deletion.
type DeleteInvestmentInput struct {
	ID uuid.UUID
}

// DeleteInvestmentUseCase handles investment deletion logic.
type DeleteInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewDeleteInvestmentUseCase creates a new DeleteInvestmentUseCase instance.
func NewDeleteInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *DeleteInvestmentUseCase {
	return &DeleteInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment deletion.
func (uc *DeleteInvestmentUseCase) Execute(ctx context.Context, input DeleteInvestmentInput) error {
	if err := uc.investmentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}
	return nil
}
