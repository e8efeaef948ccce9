// Package investment contains investment-related use cases.
package investment

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

// SaveInvestmentInput represents the input for investment creation or edit.
// A nil ID creates a new investment; a non-nil ID replaces the fields of the
// existing investment while preserving its id.
type SaveInvestmentInput struct {
	ID                 *uuid.UUID
	AssetName          string
	Amount             decimal.Decimal
	Type               entity.InvestmentType
	Date               time.Time
	ExpectedReturnRate decimal.Decimal
}

// SaveInvestmentOutput represents the output of saving an investment.
type SaveInvestmentOutput struct {
	Investment *InvestmentOutput
}

// SaveInvestmentUseCase handles investment edit-or-create logic.
type SaveInvestmentUseCase struct {
	investmentRepo adapter.InvestmentRepository
}

// NewSaveInvestmentUseCase creates a new SaveInvestmentUseCase instance.
func NewSaveInvestmentUseCase(investmentRepo adapter.InvestmentRepository) *SaveInvestmentUseCase {
	return &SaveInvestmentUseCase{
		investmentRepo: investmentRepo,
	}
}

// Execute performs the investment save.
func (uc *SaveInvestmentUseCase) Execute(ctx context.Context, input SaveInvestmentInput) (*SaveInvestmentOutput, error) {
	if strings.TrimSpace(input.AssetName) == "" {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeEmptyAssetName,
			"asset name is required",
			domainerror.ErrEmptyAssetName,
		)
	}

	if !isValidInvestmentType(input.Type) {
		return nil, domainerror.NewInvestmentError(
			domainerror.ErrCodeInvalidInvestmentType,
			"investment type must be Stock, Crypto, Cash or RealEstate",
			domainerror.ErrInvalidInvestmentType,
		)
	}

	var inv *entity.Investment

	if input.ID != nil {
		existing, err := uc.investmentRepo.FindByID(ctx, *input.ID)
		if err != nil {
			if errors.Is(err, domainerror.ErrInvestmentNotFound) {
				return nil, domainerror.NewInvestmentError(
					domainerror.ErrCodeInvestmentNotFound,
					"investment not found",
					domainerror.ErrInvestmentNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load investment: %w", err)
		}

		existing.AssetName = input.AssetName
		existing.Amount = input.Amount
		existing.Type = input.Type
		existing.Date = input.Date
		existing.ExpectedReturnRate = input.ExpectedReturnRate
		existing.UpdatedAt = time.Now().UTC()
		inv = existing
	} else {
		inv = entity.NewInvestment(
			input.AssetName,
			input.Amount,
			input.Type,
			input.Date,
			input.ExpectedReturnRate,
		)
	}

	if err := uc.investmentRepo.Save(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to save investment: %w", err)
	}

	return &SaveInvestmentOutput{Investment: toInvestmentOutput(inv)}, nil
}

// isValidInvestmentType validates the investment type against the accepted set.
func isValidInvestmentType(investmentType entity.InvestmentType) bool {
	for _, t := range entity.ValidInvestmentTypes {
		if t == investmentType {
			return true
		}
	}
	return false
}
