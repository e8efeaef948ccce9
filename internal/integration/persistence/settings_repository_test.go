package persistence

import (
	"context"
	"testing"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the default before any write", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		repo := NewSettingsRepository(db)

		currency, err := repo.GetCurrency(ctx)
		testutil.AssertNoError(t, err)
		if currency != entity.DefaultCurrency {
			t.Errorf("expected default currency %s, got %s", entity.DefaultCurrency, currency)
		}
	})

	t.Run("upserts instead of duplicating the row", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		repo := NewSettingsRepository(db)

		testutil.AssertNoError(t, repo.SetCurrency(ctx, entity.CurrencyUSD))
		testutil.AssertNoError(t, repo.SetCurrency(ctx, entity.CurrencyEUR))

		currency, err := repo.GetCurrency(ctx)
		testutil.AssertNoError(t, err)
		if currency != entity.CurrencyEUR {
			t.Errorf("expected EUR after second write, got %s", currency)
		}

		var count int64
		testutil.AssertNoError(t, db.Model(&model.SettingModel{}).Count(&count).Error)
		if count != 1 {
			t.Errorf("expected a single settings row, got %d", count)
		}
	})
}
