// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finanza-tracker/backend/internal/application/usecase/goal"
)

// SaveGoalRequest represents the request body for goal creation and edit.
type SaveGoalRequest struct {
	Title               string  `json:"title" binding:"required,min=1,max=255"`
	TargetAmount        float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount       float64 `json:"current_amount" binding:"gte=0"`
	Deadline            string  `json:"deadline" binding:"required"`
	MonthlyContribution float64 `json:"monthly_contribution" binding:"gte=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	TargetAmount        string  `json:"target_amount"`
	CurrentAmount       string  `json:"current_amount"`
	Deadline            string  `json:"deadline"`
	MonthlyContribution string  `json:"monthly_contribution"`
	Progress            float64 `json:"progress"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	return GoalResponse{
		ID:                  output.ID.String(),
		Title:               output.Title,
		TargetAmount:        output.TargetAmount.String(),
		CurrentAmount:       output.CurrentAmount.String(),
		Deadline:            output.Deadline.Format("2006-01-02"),
		MonthlyContribution: output.MonthlyContribution.String(),
		Progress:            output.Progress,
	}
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{
		Goals: goals,
	}
}
