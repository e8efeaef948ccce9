package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/persistence"
	"github.com/finanza-tracker/backend/internal/testutil"
)

func assertTransactionCode(t *testing.T, err error, code domainerror.TransactionErrorCode) {
	t.Helper()

	var txErr *domainerror.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("expected *TransactionError, got %T: %v", err, err)
	}
	if txErr.Code != code {
		t.Errorf("expected code %s, got %s", code, txErr.Code)
	}
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()

	validInput := func() CreateTransactionInput {
		return CreateTransactionInput{
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.RequireFromString("150.75"),
			CategoryID:    uuid.New(),
			Date:          time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Note:          "compra semanal",
			Merchant:      "Supermercado Central",
			PaymentMethod: entity.PaymentMethodCash,
			Items: []entity.TransactionItem{
				{Description: "Pan", Amount: decimal.RequireFromString("50.25")},
				{Description: "Leche", Amount: decimal.RequireFromString("100.50")},
			},
		}
	}

	t.Run("persists the transaction with its items", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		transactionRepo := persistence.NewTransactionRepository(db)
		uc := NewCreateTransactionUseCase(transactionRepo, persistence.NewCategoryRepository(db))

		output, err := uc.Execute(ctx, validInput())
		testutil.AssertNoError(t, err)

		stored, err := transactionRepo.FindByID(ctx, output.Transaction.ID)
		testutil.AssertNoError(t, err)

		if !stored.Amount.Equal(decimal.RequireFromString("150.75")) {
			t.Errorf("expected amount 150.75, got %s", stored.Amount)
		}
		if len(stored.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(stored.Items))
		}
		if stored.Items[0].Description != "Pan" || stored.Items[1].Description != "Leche" {
			t.Errorf("expected items in entry order, got %+v", stored.Items)
		}
	})

	t.Run("resolves the category for the response", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		categoryRepo := persistence.NewCategoryRepository(db)
		food := entity.NewCategory("Alimentación", entity.CategoryTypeVariable, decimal.NewFromInt(500), "#ef4444")
		testutil.AssertNoError(t, categoryRepo.Seed(ctx, []*entity.Category{food}))

		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), categoryRepo)

		input := validInput()
		input.CategoryID = food.ID
		output, err := uc.Execute(ctx, input)
		testutil.AssertNoError(t, err)

		if output.Transaction.Category == nil {
			t.Fatal("expected category attached to output")
		}
		if output.Transaction.Category.Name != "Alimentación" {
			t.Errorf("expected category name Alimentación, got %s", output.Transaction.Category.Name)
		}
	})

	t.Run("accepts unknown category ids", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		output, err := uc.Execute(ctx, validInput())
		testutil.AssertNoError(t, err)

		if output.Transaction.Category != nil {
			t.Errorf("expected nil category for unknown id, got %+v", output.Transaction.Category)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		input := validInput()
		input.Type = "transfer"
		_, err := uc.Execute(ctx, input)
		assertTransactionCode(t, err, domainerror.ErrCodeInvalidTransactionType)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		input := validInput()
		input.Amount = decimal.RequireFromString("-1")
		_, err := uc.Execute(ctx, input)
		assertTransactionCode(t, err, domainerror.ErrCodeNegativeTransactionAmount)
	})

	t.Run("rejects unsupported payment method", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		input := validInput()
		input.PaymentMethod = "Cheque"
		_, err := uc.Execute(ctx, input)
		assertTransactionCode(t, err, domainerror.ErrCodeInvalidPaymentMethod)
	})

	t.Run("rejects overlong note", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		input := validInput()
		input.Note = strings.Repeat("x", MaxNoteLength+1)
		_, err := uc.Execute(ctx, input)
		assertTransactionCode(t, err, domainerror.ErrCodeNoteTooLong)
	})

	t.Run("rejects overlong merchant", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		uc := NewCreateTransactionUseCase(persistence.NewTransactionRepository(db), persistence.NewCategoryRepository(db))

		input := validInput()
		input.Merchant = strings.Repeat("x", MaxMerchantLength+1)
		_, err := uc.Execute(ctx, input)
		assertTransactionCode(t, err, domainerror.ErrCodeMerchantTooLong)
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the transaction and its items", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		transactionRepo := persistence.NewTransactionRepository(db)
		createUC := NewCreateTransactionUseCase(transactionRepo, persistence.NewCategoryRepository(db))
		deleteUC := NewDeleteTransactionUseCase(transactionRepo)

		output, err := createUC.Execute(ctx, CreateTransactionInput{
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(10),
			CategoryID:    uuid.New(),
			Date:          time.Now().UTC(),
			PaymentMethod: entity.PaymentMethodCash,
			Items: []entity.TransactionItem{
				{Description: "Pan", Amount: decimal.NewFromInt(10)},
			},
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, deleteUC.Execute(ctx, DeleteTransactionInput{ID: output.Transaction.ID}))

		_, err = transactionRepo.FindByID(ctx, output.Transaction.ID)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Fatalf("expected ErrTransactionNotFound after delete, got %v", err)
		}
	})

	t.Run("deleting an unknown id succeeds", func(t *testing.T) {
		db := testutil.OpenTestDB(t)
		deleteUC := NewDeleteTransactionUseCase(persistence.NewTransactionRepository(db))

		testutil.AssertNoError(t, deleteUC.Execute(ctx, DeleteTransactionInput{ID: uuid.New()}))
	})
}
