// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finanza-tracker/backend/internal/application/usecase/transaction"
)

// TransactionItemRequest represents a line item in a transaction create request.
type TransactionItemRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required"`
}

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type          string                   `json:"type" binding:"required,oneof=expense income"`
	Amount        float64                  `json:"amount" binding:"required,gte=0"`
	CategoryID    string                   `json:"category_id" binding:"required,uuid"`
	Date          string                   `json:"date" binding:"required"`
	Note          string                   `json:"note,omitempty" binding:"omitempty,max=1000"`
	Merchant      string                   `json:"merchant,omitempty" binding:"omitempty,max=255"`
	PaymentMethod string                   `json:"payment_method" binding:"required"`
	Items         []TransactionItemRequest `json:"items,omitempty"`
}

// TransactionItemResponse represents a line item in transaction responses.
type TransactionItemResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string                       `json:"id"`
	Type          string                       `json:"type"`
	Amount        string                       `json:"amount"`
	CategoryID    string                       `json:"category_id"`
	Category      *TransactionCategoryResponse `json:"category,omitempty"`
	Date          string                       `json:"date"`
	Note          string                       `json:"note,omitempty"`
	Merchant      string                       `json:"merchant,omitempty"`
	PaymentMethod string                       `json:"payment_method"`
	Items         []TransactionItemResponse    `json:"items,omitempty"`
	CreatedAt     time.Time                    `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:            txn.ID.String(),
		Type:          string(txn.Type),
		Amount:        txn.Amount.String(),
		CategoryID:    txn.CategoryID.String(),
		Date:          txn.Date.Format("2006-01-02"),
		Note:          txn.Note,
		Merchant:      txn.Merchant,
		PaymentMethod: string(txn.PaymentMethod),
		CreatedAt:     txn.CreatedAt,
	}

	for _, item := range txn.Items {
		response.Items = append(response.Items, TransactionItemResponse{
			Description: item.Description,
			Amount:      item.Amount.String(),
		})
	}

	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
		}
	}

	return response
}

// ToTransactionListResponse converts a list of TransactionOutput to TransactionListResponse.
func ToTransactionListResponse(outputs []*transaction.TransactionOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(outputs))
	for i, output := range outputs {
		transactions[i] = ToTransactionResponse(output)
	}
	return TransactionListResponse{
		Transactions: transactions,
	}
}
