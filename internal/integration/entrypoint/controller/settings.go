// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/application/usecase/settings"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles user preference endpoints.
type SettingsController struct {
	getUseCase    *settings.GetSettingsUseCase
	updateUseCase *settings.UpdateCurrencyUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getUseCase *settings.GetSettingsUseCase,
	updateUseCase *settings.UpdateCurrencyUseCase,
) *SettingsController {
	return &SettingsController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /settings requests.
func (c *SettingsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve settings",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}

// UpdateCurrency handles PUT /settings/currency requests.
func (c *SettingsController) UpdateCurrency(ctx *gin.Context) {
	var req dto.UpdateCurrencyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := settings.UpdateCurrencyInput{Currency: entity.CurrencyCode(req.Currency)}
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var setErr *domainerror.SettingsError
		if errors.As(err, &setErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: setErr.Message,
				Code:  string(setErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSettingsResponse(output))
}
