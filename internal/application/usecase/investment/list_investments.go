// Package investment contains investment-related use cases.
package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// InvestmentOutput represents an investment in use case outputs.
type InvestmentOutput struct {
	ID                 uuid.UUID
	AssetName          string
	Amount             decimal.Decimal
	Type               entity.InvestmentType
	Date               time.Time
	ExpectedReturnRate decimal.Decimal
}

// toInvestmentOutput converts an investment entity to its output form.
func toInvestmentOutput(inv *entity.Investment) *InvestmentOutput {
	return &InvestmentOutput{
		ID:                 inv.ID,
		AssetName:          inv.AssetName,
		Amount:             inv.Amount,
		Type:               inv.Type,
		Date:               inv.Date,
		ExpectedReturnRate: inv.ExpectedReturnRate,
	}
}

// ListInvestmentsOutput represents the output of listing investments.
type ListInvestmentsOutput struct {
	Investments []*InvestmentOutput
	Total       decimal.Decimal
}

// ListInvestmentsUseCase handles listing all investments.
type ListInvestmentsUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(investmentRepo adapter.InvestmentRepository) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute retrieves all investments with the invested total.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context) (*ListInvestmentsOutput, error) {
	investments, err := uc.investmentRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	output := &ListInvestmentsOutput{
		Investments: make([]*InvestmentOutput, 0, len(investments)),
		Total:       decimal.Zero,
	}
	for _, inv := range investments {
		output.Investments = append(output.Investments, toInvestmentOutput(inv))
		output.Total = output.Total.Add(inv.Amount)
	}

	return output, nil
}
