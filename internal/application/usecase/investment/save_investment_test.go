package investment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func assertInvestmentCode(t *testing.T, err error, code domainerror.InvestmentErrorCode) {
	t.Helper()

	var invErr *domainerror.InvestmentError
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *InvestmentError, got %T: %v", err, err)
	}
	if invErr.Code != code {
		t.Errorf("expected code %s, got %s", code, invErr.Code)
	}
}

func TestSaveInvestment(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates an investment when no id is given", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		investmentRepo := persistence.NewInvestmentRepository(db)
		uc := NewSaveInvestmentUseCase(investmentRepo)

		output, err := uc.Execute(ctx, SaveInvestmentInput{
			AssetName:          "Bitcoin",
			Amount:             decimal.RequireFromString("50000"),
			Type:               entity.InvestmentTypeCrypto,
			Date:               date,
			ExpectedReturnRate: decimal.RequireFromString("12.5"),
		})
		testutil.AssertNoError(t, err)

		if output.Investment.ID == uuid.Nil {
			t.Error("expected a generated id")
		}

		stored, err := investmentRepo.FindByID(ctx, output.Investment.ID)
		testutil.AssertNoError(t, err)
		if stored.Type != entity.InvestmentTypeCrypto {
			t.Errorf("expected Crypto type, got %s", stored.Type)
		}
		if !stored.ExpectedReturnRate.Equal(decimal.RequireFromString("12.5")) {
			t.Errorf("expected return rate 12.5, got %s", stored.ExpectedReturnRate)
		}
	})

	t.Run("edit preserves the id and replaces fields", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		investmentRepo := persistence.NewInvestmentRepository(db)
		uc := NewSaveInvestmentUseCase(investmentRepo)

		created, err := uc.Execute(ctx, SaveInvestmentInput{
			AssetName: "Bitcoin",
			Amount:    decimal.NewFromInt(50000),
			Type:      entity.InvestmentTypeCrypto,
			Date:      date,
		})
		testutil.AssertNoError(t, err)

		id := created.Investment.ID
		edited, err := uc.Execute(ctx, SaveInvestmentInput{
			ID:        &id,
			AssetName: "Bitcoin",
			Amount:    decimal.NewFromInt(52000),
			Type:      entity.InvestmentTypeCrypto,
			Date:      date,
		})
		testutil.AssertNoError(t, err)

		if edited.Investment.ID != id {
			t.Errorf("expected id preserved on edit, got %s", edited.Investment.ID)
		}

		all, err := investmentRepo.FindAll(ctx)
		testutil.AssertNoError(t, err)
		if len(all) != 1 {
			t.Fatalf("expected a single investment after edit, got %d", len(all))
		}
		if !all[0].Amount.Equal(decimal.NewFromInt(52000)) {
			t.Errorf("expected edited amount 52000, got %s", all[0].Amount)
		}
	})

	t.Run("rejects blank asset name", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewSaveInvestmentUseCase(persistence.NewInvestmentRepository(db))

		_, err := uc.Execute(ctx, SaveInvestmentInput{
			AssetName: "  ",
			Type:      entity.InvestmentTypeStock,
			Date:      date,
		})
		assertInvestmentCode(t, err, domainerror.ErrCodeEmptyAssetName)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewSaveInvestmentUseCase(persistence.NewInvestmentRepository(db))

		_, err := uc.Execute(ctx, SaveInvestmentInput{
			AssetName: "Oro",
			Type:      "Commodity",
			Date:      date,
		})
		assertInvestmentCode(t, err, domainerror.ErrCodeInvalidInvestmentType)
	})

	t.Run("editing an unknown id fails", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewSaveInvestmentUseCase(persistence.NewInvestmentRepository(db))

		unknown := uuid.New()
		_, err := uc.Execute(ctx, SaveInvestmentInput{
			ID:        &unknown,
			AssetName: "Fantasma",
			Type:      entity.InvestmentTypeCash,
			Date:      date,
		})
		assertInvestmentCode(t, err, domainerror.ErrCodeInvestmentNotFound)
	})
}

func TestListInvestments(t *testing.T) {
	ctx := context.Background()

	t.Run("totals every holding", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		investmentRepo := persistence.NewInvestmentRepository(db)
		saveUC := NewSaveInvestmentUseCase(investmentRepo)
		listUC := NewListInvestmentsUseCase(investmentRepo)

		date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		for _, in := range []SaveInvestmentInput{
			{AssetName: "Bitcoin", Amount: decimal.RequireFromString("1000.25"), Type: entity.InvestmentTypeCrypto, Date: date},
			{AssetName: "AAPL", Amount: decimal.RequireFromString("500.25"), Type: entity.InvestmentTypeStock, Date: date},
		} {
			_, err := saveUC.Execute(ctx, in)
			testutil.AssertNoError(t, err)
		}

		output, err := listUC.Execute(ctx)
		testutil.AssertNoError(t, err)

		if len(output.Investments) != 2 {
			t.Fatalf("expected 2 investments, got %d", len(output.Investments))
		}
		if !output.Total.Equal(decimal.RequireFromString("1500.50")) {
			t.Errorf("expected total 1500.50, got %s", output.Total)
		}
	})

	t.Run("empty list reports zero total", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		listUC := NewListInvestmentsUseCase(persistence.NewInvestmentRepository(db))

		output, err := listUC.Execute(ctx)
		testutil.AssertNoError(t, err)

		if len(output.Investments) != 0 {
			t.Errorf("expected no investments, got %d", len(output.Investments))
		}
		if !output.Total.IsZero() {
			t.Errorf("expected zero total, got %s", output.Total)
		}
	})
}

func TestDeleteInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting an unknown id succeeds", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		deleteUC := NewDeleteInvestmentUseCase(persistence.NewInvestmentRepository(db))

		testutil.AssertNoError(t, deleteUC.Execute(ctx, DeleteInvestmentInput{ID: uuid.New()}))
	})
}
