// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/usecase/goal"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	saveUseCase   *goal.SaveGoalUseCase
	listUseCase   *goal.ListGoalsUseCase
	deleteUseCase *goal.DeleteGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	saveUseCase *goal.SaveGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
) *GoalController {
	return &GoalController{
		saveUseCase:   saveUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve goals",
		})
		return
	}

	response := dto.ToGoalListResponse(output.Goals)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	input, ok := c.bindSaveInput(ctx, nil)
	if !ok {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests. Every field of the stored goal is
// replaced; only the id is preserved.
func (c *GoalController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input, ok := c.bindSaveInput(ctx, &id)
	if !ok {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
		})
		return
	}

	input := goal.DeleteGoalInput{ID: id}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindSaveInput parses and validates the shared save request body.
func (c *GoalController) bindSaveInput(ctx *gin.Context, id *uuid.UUID) (goal.SaveGoalInput, bool) {
	var req dto.SaveGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return goal.SaveGoalInput{}, false
	}

	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid deadline format, expected YYYY-MM-DD",
		})
		return goal.SaveGoalInput{}, false
	}

	return goal.SaveGoalInput{
		ID:                  id,
		Title:               req.Title,
		TargetAmount:        decimal.NewFromFloat(req.TargetAmount),
		CurrentAmount:       decimal.NewFromFloat(req.CurrentAmount),
		Deadline:            deadline,
		MonthlyContribution: decimal.NewFromFloat(req.MonthlyContribution),
	}, true
}

// handleGoalError maps goal errors to HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := http.StatusBadRequest
		if goalErr.Code == domainerror.ErrCodeGoalNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrGoalNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Goal not found",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
