// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the persisted user preferences.
type SettingsRepository interface {
	// GetCurrency returns the persisted currency preference, or the default
	// when none has been stored yet.
	GetCurrency(ctx context.Context) (entity.CurrencyCode, error)

	// SetCurrency persists the currency preference.
	SetCurrency(ctx context.Context, currency entity.CurrencyCode) error
}
