// Package settings contains user preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

// UpdateCurrencyInput represents the input for updating the currency preference.
type UpdateCurrencyInput struct {
	Currency entity.CurrencyCode
}

// UpdateCurrencyUseCase handles updating the persisted currency preference.
type UpdateCurrencyUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateCurrencyUseCase creates a new UpdateCurrencyUseCase instance.
func NewUpdateCurrencyUseCase(settingsRepo adapter.SettingsRepository) *UpdateCurrencyUseCase {
	return &UpdateCurrencyUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and persists the currency preference.
func (uc *UpdateCurrencyUseCase) Execute(ctx context.Context, input UpdateCurrencyInput) (*GetSettingsOutput, error) {
	if !input.Currency.IsValid() {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeInvalidCurrency,
			"currency must be one of ARS, USD, EUR, USDT",
			domainerror.ErrInvalidCurrency,
		)
	}

	if err := uc.settingsRepo.SetCurrency(ctx, input.Currency); err != nil {
		return nil, fmt.Errorf("failed to persist currency: %w", err)
	}

	return &GetSettingsOutput{
		Currency: input.Currency,
		Symbol:   input.Currency.Symbol(),
	}, nil
}
