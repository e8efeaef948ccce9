// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finanza-tracker/backend/internal/application/usecase/dashboard"
)

// CategoryExpenseResponse is one entry of the expense-by-category breakdown.
type CategoryExpenseResponse struct {
	CategoryName string  `json:"category_name"`
	Color        string  `json:"color"`
	Amount       string  `json:"amount"`
	Budget       string  `json:"budget"`
	Percentage   float64 `json:"percentage"`
}

// DashboardSummaryResponse represents the aggregated dashboard figures.
type DashboardSummaryResponse struct {
	TotalIncome       string                    `json:"total_income"`
	TotalExpense      string                    `json:"total_expense"`
	Balance           string                    `json:"balance"`
	ExpenseByCategory []CategoryExpenseResponse `json:"expense_by_category"`
}

// ToDashboardSummaryResponse converts a GetSummaryOutput to a DashboardSummaryResponse DTO.
func ToDashboardSummaryResponse(output *dashboard.GetSummaryOutput) DashboardSummaryResponse {
	breakdown := make([]CategoryExpenseResponse, len(output.ExpenseByCategory))
	for i, entry := range output.ExpenseByCategory {
		breakdown[i] = CategoryExpenseResponse{
			CategoryName: entry.CategoryName,
			Color:        entry.Color,
			Amount:       entry.Amount.String(),
			Budget:       entry.Budget.String(),
			Percentage:   entry.Percentage,
		}
	}
	return DashboardSummaryResponse{
		TotalIncome:       output.TotalIncome.String(),
		TotalExpense:      output.TotalExpense.String(),
		Balance:           output.Balance.String(),
		ExpenseByCategory: breakdown,
	}
}
