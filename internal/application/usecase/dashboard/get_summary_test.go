package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func TestGetSummary(t *testing.T) {
	ctx := context.Background()

	newTransaction := func(txType entity.TransactionType, amount string, categoryID uuid.UUID) *entity.Transaction {
		return entity.NewTransaction(
			txType,
			decimal.RequireFromString(amount),
			categoryID,
			time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			"",
			"",
			entity.PaymentMethodCash,
			nil,
		)
	}

	t.Run("empty collection yields zero totals", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewGetSummaryUseCase(
			persistence.NewTransactionRepository(db),
			persistence.NewCategoryRepository(db),
		)

		output, err := uc.Execute(ctx)
		testutil.AssertNoError(t, err)

		if !output.TotalIncome.IsZero() || !output.TotalExpense.IsZero() || !output.Balance.IsZero() {
			t.Errorf("expected zero totals, got income=%s expense=%s balance=%s",
				output.TotalIncome, output.TotalExpense, output.Balance)
		}
		if len(output.ExpenseByCategory) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(output.ExpenseByCategory))
		}
	})

	t.Run("totals and balance across income and expenses", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		transactionRepo := persistence.NewTransactionRepository(db)
		categoryRepo := persistence.NewCategoryRepository(db)

		food := entity.NewCategory("Alimentación", entity.CategoryTypeVariable, decimal.NewFromInt(500), "#ef4444")
		housing := entity.NewCategory("Vivienda", entity.CategoryTypeFixed, decimal.NewFromInt(1200), "#3b82f6")
		income := entity.NewCategory("Ingresos Laborales", entity.CategoryTypeFixed, decimal.Zero, "#10b981")
		testutil.AssertNoError(t, categoryRepo.Seed(ctx, []*entity.Category{food, housing, income}))

		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeIncome, "4500", income.ID)))
		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "45.50", food.ID)))
		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "1200", housing.ID)))

		uc := NewGetSummaryUseCase(transactionRepo, categoryRepo)
		output, err := uc.Execute(ctx)
		testutil.AssertNoError(t, err)

		if !output.TotalIncome.Equal(decimal.RequireFromString("4500")) {
			t.Errorf("expected total income 4500, got %s", output.TotalIncome)
		}
		if !output.TotalExpense.Equal(decimal.RequireFromString("1245.50")) {
			t.Errorf("expected total expense 1245.50, got %s", output.TotalExpense)
		}
		if !output.Balance.Equal(decimal.RequireFromString("3254.50")) {
			t.Errorf("expected balance 3254.50, got %s", output.Balance)
		}
	})

	t.Run("breakdown carries budget and color and sorts largest first", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		transactionRepo := persistence.NewTransactionRepository(db)
		categoryRepo := persistence.NewCategoryRepository(db)

		food := entity.NewCategory("Alimentación", entity.CategoryTypeVariable, decimal.NewFromInt(500), "#ef4444")
		housing := entity.NewCategory("Vivienda", entity.CategoryTypeFixed, decimal.NewFromInt(1200), "#3b82f6")
		testutil.AssertNoError(t, categoryRepo.Seed(ctx, []*entity.Category{food, housing}))

		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "45.50", food.ID)))
		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "1200", housing.ID)))

		uc := NewGetSummaryUseCase(transactionRepo, categoryRepo)
		output, err := uc.Execute(ctx)
		testutil.AssertNoError(t, err)

		if len(output.ExpenseByCategory) != 2 {
			t.Fatalf("expected 2 breakdown entries, got %d", len(output.ExpenseByCategory))
		}

		first := output.ExpenseByCategory[0]
		if first.CategoryName != "Vivienda" {
			t.Errorf("expected largest bucket Vivienda first, got %s", first.CategoryName)
		}
		if first.Color != "#3b82f6" {
			t.Errorf("expected category color, got %s", first.Color)
		}
		if !first.Budget.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected budget 1200, got %s", first.Budget)
		}

		second := output.ExpenseByCategory[1]
		if second.CategoryName != "Alimentación" {
			t.Errorf("expected Alimentación second, got %s", second.CategoryName)
		}

		sum := first.Amount.Add(second.Amount)
		if !sum.Equal(output.TotalExpense) {
			t.Errorf("expected breakdown to sum to total expense %s, got %s", output.TotalExpense, sum)
		}
		if first.Percentage+second.Percentage < 99.9 || first.Percentage+second.Percentage > 100.1 {
			t.Errorf("expected percentages to sum to ~100, got %f", first.Percentage+second.Percentage)
		}
	})

	t.Run("orphaned category ids bucket under Otros", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		transactionRepo := persistence.NewTransactionRepository(db)
		categoryRepo := persistence.NewCategoryRepository(db)

		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "80", uuid.New())))
		testutil.AssertNoError(t, transactionRepo.Create(ctx, newTransaction(entity.TransactionTypeExpense, "20", uuid.New())))

		uc := NewGetSummaryUseCase(transactionRepo, categoryRepo)
		output, err := uc.Execute(ctx)
		testutil.AssertNoError(t, err)

		if len(output.ExpenseByCategory) != 1 {
			t.Fatalf("expected a single Otros bucket, got %d entries", len(output.ExpenseByCategory))
		}
		bucket := output.ExpenseByCategory[0]
		if bucket.CategoryName != FallbackCategoryName {
			t.Errorf("expected bucket %q, got %q", FallbackCategoryName, bucket.CategoryName)
		}
		if !bucket.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected bucket amount 100, got %s", bucket.Amount)
		}
		if !bucket.Budget.IsZero() {
			t.Errorf("expected zero budget for orphan bucket, got %s", bucket.Budget)
		}
	})
}
