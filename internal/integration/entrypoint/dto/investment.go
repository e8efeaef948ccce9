// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finanza-tracker/backend/internal/application/usecase/investment"
)

// SaveInvestmentRequest represents the request body for investment creation and edit.
type SaveInvestmentRequest struct {
	AssetName          string  `json:"asset_name" binding:"required,min=1,max=255"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	Type               string  `json:"type" binding:"required,oneof=Stock Crypto Cash RealEstate"`
	Date               string  `json:"date" binding:"required"`
	ExpectedReturnRate float64 `json:"expected_return_rate" binding:"gte=0"`
}

// InvestmentResponse represents a single investment in API responses.
type InvestmentResponse struct {
	ID                 string `json:"id"`
	AssetName          string `json:"asset_name"`
	Amount             string `json:"amount"`
	Type               string `json:"type"`
	Date               string `json:"date"`
	ExpectedReturnRate string `json:"expected_return_rate"`
}

// InvestmentListResponse represents the response for listing investments.
type InvestmentListResponse struct {
	Investments []InvestmentResponse `json:"investments"`
	Total       string               `json:"total"`
}

// ToInvestmentResponse converts an InvestmentOutput to an InvestmentResponse DTO.
func ToInvestmentResponse(output *investment.InvestmentOutput) InvestmentResponse {
	return InvestmentResponse{
		ID:                 output.ID.String(),
		AssetName:          output.AssetName,
		Amount:             output.Amount.String(),
		Type:               string(output.Type),
		Date:               output.Date.Format("2006-01-02"),
		ExpectedReturnRate: output.ExpectedReturnRate.String(),
	}
}

// ToInvestmentListResponse converts a ListInvestmentsOutput to InvestmentListResponse.
func ToInvestmentListResponse(output *investment.ListInvestmentsOutput) InvestmentListResponse {
	investments := make([]InvestmentResponse, len(output.Investments))
	for i, inv := range output.Investments {
		investments[i] = ToInvestmentResponse(inv)
	}
	return InvestmentListResponse{
		Investments: investments,
		Total:       output.Total.String(),
	}
}
