// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finanza-tracker/backend/internal/application/usecase/settings"
)

// UpdateCurrencyRequest represents the request body for updating the currency.
type UpdateCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

// SettingsResponse represents the persisted user preferences in API responses.
type SettingsResponse struct {
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
}

// ToSettingsResponse converts a GetSettingsOutput to a SettingsResponse DTO.
func ToSettingsResponse(output *settings.GetSettingsOutput) SettingsResponse {
	return SettingsResponse{
		Currency: string(output.Currency),
		Symbol:   output.Symbol,
	}
}
