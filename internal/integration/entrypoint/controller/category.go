// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/application/usecase/category"
	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	response := dto.ToCategoryListResponse(output.Categories)
	ctx.JSON(http.StatusOK, response)
}
