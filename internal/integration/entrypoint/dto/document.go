// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finanza-tracker/backend/internal/application/usecase/document"
)

// ExtractedItemResponse represents a line item in an extraction response.
type ExtractedItemResponse struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

// ExtractTransactionResponse is the draft transaction prefill produced by
// document extraction. Nothing is persisted; the client reviews it in the
// entry form before submitting.
type ExtractTransactionResponse struct {
	Merchant   string                  `json:"merchant"`
	Amount     string                  `json:"amount"`
	Date       string                  `json:"date,omitempty"`
	Type       string                  `json:"type"`
	CategoryID string                  `json:"category_id"`
	Items      []ExtractedItemResponse `json:"items"`
}

// ToExtractTransactionResponse converts an ExtractTransactionOutput to its DTO.
func ToExtractTransactionResponse(output *document.ExtractTransactionOutput) ExtractTransactionResponse {
	items := make([]ExtractedItemResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = ExtractedItemResponse{
			Description: item.Description,
			Amount:      item.Amount.String(),
		}
	}
	return ExtractTransactionResponse{
		Merchant:   output.Merchant,
		Amount:     output.Amount.String(),
		Date:       output.Date,
		Type:       string(output.Type),
		CategoryID: output.CategoryID.String(),
		Items:      items,
	}
}
