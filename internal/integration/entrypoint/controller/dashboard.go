// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/application/usecase/dashboard"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{
		summaryUseCase: summaryUseCase,
	}
}

// Summary handles GET /dashboard/summary requests.
func (c *DashboardController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	response := dto.ToDashboardSummaryResponse(output)
	ctx.JSON(http.StatusOK, response)
}
