package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func TestGetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to ARS before any update", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewGetSettingsUseCase(persistence.NewSettingsRepository(db))

		output, err := uc.Execute(ctx)
		testutil.AssertNoError(t, err)

		if output.Currency != entity.CurrencyARS {
			t.Errorf("expected default currency ARS, got %s", output.Currency)
		}
		if output.Symbol != "$" {
			t.Errorf("expected symbol $, got %s", output.Symbol)
		}
	})
}

func TestUpdateCurrency(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the new currency with its symbol", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		settingsRepo := persistence.NewSettingsRepository(db)
		updateUC := NewUpdateCurrencyUseCase(settingsRepo)
		getUC := NewGetSettingsUseCase(settingsRepo)

		output, err := updateUC.Execute(ctx, UpdateCurrencyInput{Currency: entity.CurrencyUSD})
		testutil.AssertNoError(t, err)

		if output.Currency != entity.CurrencyUSD || output.Symbol != "US$" {
			t.Errorf("expected USD/US$, got %s/%s", output.Currency, output.Symbol)
		}

		persisted, err := getUC.Execute(ctx)
		testutil.AssertNoError(t, err)
		if persisted.Currency != entity.CurrencyUSD {
			t.Errorf("expected persisted currency USD, got %s", persisted.Currency)
		}
	})

	t.Run("updating twice keeps the latest value", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		settingsRepo := persistence.NewSettingsRepository(db)
		updateUC := NewUpdateCurrencyUseCase(settingsRepo)

		_, err := updateUC.Execute(ctx, UpdateCurrencyInput{Currency: entity.CurrencyUSD})
		testutil.AssertNoError(t, err)
		_, err = updateUC.Execute(ctx, UpdateCurrencyInput{Currency: entity.CurrencyEUR})
		testutil.AssertNoError(t, err)

		currency, err := settingsRepo.GetCurrency(ctx)
		testutil.AssertNoError(t, err)
		if currency != entity.CurrencyEUR {
			t.Errorf("expected EUR after second update, got %s", currency)
		}
	})

	t.Run("rejects unsupported currency codes", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewUpdateCurrencyUseCase(persistence.NewSettingsRepository(db))

		_, err := uc.Execute(ctx, UpdateCurrencyInput{Currency: "BRL"})

		var settingsErr *domainerror.SettingsError
		if !errors.As(err, &settingsErr) {
			t.Fatalf("expected *SettingsError, got %T: %v", err, err)
		}
		if settingsErr.Code != domainerror.ErrCodeInvalidCurrency {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCurrency, settingsErr.Code)
		}
	})
}

func TestCurrencySymbols(t *testing.T) {
	cases := []struct {
		currency entity.CurrencyCode
		symbol   string
	}{
		{entity.CurrencyARS, "$"},
		{entity.CurrencyUSD, "US$"},
		{entity.CurrencyEUR, "€"},
		{entity.CurrencyUSDT, "₮"},
	}

	for _, c := range cases {
		if got := c.currency.Symbol(); got != c.symbol {
			t.Errorf("expected symbol %q for %s, got %q", c.symbol, c.currency, got)
		}
	}
}
