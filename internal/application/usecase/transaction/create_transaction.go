// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

const (
	// MaxNoteLength is the maximum allowed length for transaction notes.
	MaxNoteLength = 1000
	// MaxMerchantLength is the maximum allowed length for merchant names.
	MaxMerchantLength = 255
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type          entity.TransactionType
	Amount        decimal.Decimal
	CategoryID    uuid.UUID
	Date          time.Time
	Note          string
	Merchant      string
	PaymentMethod entity.PaymentMethod
	Items         []entity.TransactionItem
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeTransactionAmount,
			"amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}

	if !isValidPaymentMethod(input.PaymentMethod) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method is not supported",
			domainerror.ErrInvalidPaymentMethod,
		)
	}

	if len(input.Note) > MaxNoteLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNoteTooLong,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			domainerror.ErrNoteTooLong,
		)
	}

	if len(input.Merchant) > MaxMerchantLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMerchantTooLong,
			fmt.Sprintf("merchant must not exceed %d characters", MaxMerchantLength),
			domainerror.ErrMerchantTooLong,
		)
	}

	// The category reference is intentionally not enforced: a transaction may
	// keep pointing at a category that no longer exists, and aggregation
	// buckets it under "Otros". The lookup here only enriches the output.
	var category *entity.Category
	if cat, err := uc.categoryRepo.FindByID(ctx, input.CategoryID); err == nil {
		category = cat
	} else {
		slog.Debug("Transaction created with unknown category",
			"categoryID", input.CategoryID,
			"error", err,
		)
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Amount,
		input.CategoryID,
		input.Date,
		input.Note,
		input.Merchant,
		input.PaymentMethod,
		input.Items,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction, category),
	}, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}

// isValidPaymentMethod validates the payment method against the accepted set.
func isValidPaymentMethod(method entity.PaymentMethod) bool {
	for _, m := range entity.ValidPaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}
