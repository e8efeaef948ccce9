// Package settings contains user preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of reading the settings.
type GetSettingsOutput struct {
	Currency entity.CurrencyCode
	Symbol   string
}

// GetSettingsUseCase handles reading the persisted user preferences.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute retrieves the currency preference and its display symbol.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	currency, err := uc.settingsRepo.GetCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return &GetSettingsOutput{
		Currency: currency,
		Symbol:   currency.Symbol(),
	}, nil
}
