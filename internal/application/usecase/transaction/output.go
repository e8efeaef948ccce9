// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// ItemOutput represents a transaction line item in use case outputs.
type ItemOutput struct {
	Description string
	Amount      decimal.Decimal
}

// CategoryOutput represents the category attached to a transaction output.
type CategoryOutput struct {
	ID    uuid.UUID
	Name  string
	Color string
}

// TransactionOutput represents a transaction in use case outputs.
type TransactionOutput struct {
	ID            uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	CategoryID    uuid.UUID
	Date          time.Time
	Note          string
	Merchant      string
	PaymentMethod entity.PaymentMethod
	Items         []ItemOutput
	Category      *CategoryOutput
	CreatedAt     time.Time
}

// toTransactionOutput converts a transaction entity to its output form.
func toTransactionOutput(t *entity.Transaction, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:            t.ID,
		Type:          t.Type,
		Amount:        t.Amount,
		CategoryID:    t.CategoryID,
		Date:          t.Date,
		Note:          t.Note,
		Merchant:      t.Merchant,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
	}

	for _, item := range t.Items {
		out.Items = append(out.Items, ItemOutput{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}

	if category != nil {
		out.Category = &CategoryOutput{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
		}
	}

	return out
}
