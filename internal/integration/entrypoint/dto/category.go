// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finanza-tracker/backend/internal/application/usecase/category"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Budget    string    `json:"budget"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:        output.ID.String(),
		Name:      output.Name,
		Type:      string(output.Type),
		Budget:    output.Budget.String(),
		Color:     output.Color,
		CreatedAt: output.CreatedAt,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponse(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
