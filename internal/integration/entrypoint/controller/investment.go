// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/usecase/investment"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// InvestmentController handles investment endpoints.
type InvestmentController struct {
	saveUseCase   *investment.SaveInvestmentUseCase
	listUseCase   *investment.ListInvestmentsUseCase
	deleteUseCase *investment.DeleteInvestmentUseCase
}

// NewInvestmentController creates a new investment controller instance.
func NewInvestmentController(
	saveUseCase *investment.SaveInvestmentUseCase,
	listUseCase *investment.ListInvestmentsUseCase,
	deleteUseCase *investment.DeleteInvestmentUseCase,
) *InvestmentController {
	return &InvestmentController{
		saveUseCase:   saveUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /investments requests.
func (c *InvestmentController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve investments",
		})
		return
	}

	response := dto.ToInvestmentListResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /investments requests.
func (c *InvestmentController) Create(ctx *gin.Context) {
	input, ok := c.bindSaveInput(ctx, nil)
	if !ok {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvestmentResponse(output.Investment))
}

// Update handles PUT /investments/:id requests. Every field of the stored
// investment is replaced; only the id is preserved.
func (c *InvestmentController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	input, ok := c.bindSaveInput(ctx, &id)
	if !ok {
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvestmentResponse(output.Investment))
}

// Delete handles DELETE /investments/:id requests.
func (c *InvestmentController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid investment ID format",
		})
		return
	}

	input := investment.DeleteInvestmentInput{ID: id}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleInvestmentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// bindSaveInput parses and validates the shared save request body.
func (c *InvestmentController) bindSaveInput(ctx *gin.Context, id *uuid.UUID) (investment.SaveInvestmentInput, bool) {
	var req dto.SaveInvestmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return investment.SaveInvestmentInput{}, false
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return investment.SaveInvestmentInput{}, false
	}

	return investment.SaveInvestmentInput{
		ID:                 id,
		AssetName:          req.AssetName,
		Amount:             decimal.NewFromFloat(req.Amount),
		Type:               entity.InvestmentType(req.Type),
		Date:               date,
		ExpectedReturnRate: decimal.NewFromFloat(req.ExpectedReturnRate),
	}, true
}

// handleInvestmentError maps investment errors to HTTP responses.
func (c *InvestmentController) handleInvestmentError(ctx *gin.Context, err error) {
	var invErr *domainerror.InvestmentError
	if errors.As(err, &invErr) {
		statusCode := http.StatusBadRequest
		if invErr.Code == domainerror.ErrCodeInvestmentNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: invErr.Message,
			Code:  string(invErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrInvestmentNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Investment not found",
			Code:  string(domainerror.ErrCodeInvestmentNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
