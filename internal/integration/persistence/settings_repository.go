// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
)

// currencySettingKey is the settings row holding the display currency.
const currencySettingKey = "currency"

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetCurrency returns the stored currency, or the default when no row exists.
func (r *settingsRepository) GetCurrency(ctx context.Context) (entity.CurrencyCode, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", currencySettingKey).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultCurrency, nil
		}
		return "", result.Error
	}
	return entity.CurrencyCode(settingModel.Value), nil
}

// SetCurrency upserts the currency row.
func (r *settingsRepository) SetCurrency(ctx context.Context, currency entity.CurrencyCode) error {
	settingModel := model.SettingModel{
		Key:       currencySettingKey,
		Value:     string(currency),
		UpdatedAt: time.Now().UTC(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
