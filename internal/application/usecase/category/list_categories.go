// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// CategoryOutput represents a category in use case outputs.
type CategoryOutput struct {
	ID        uuid.UUID
	Name      string
	Type      entity.CategoryType
	Budget    decimal.Decimal
	Color     string
	CreatedAt time.Time
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// ListCategoriesUseCase handles listing all categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves all categories.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
	}
	for _, cat := range categories {
		output.Categories = append(output.Categories, &CategoryOutput{
			ID:        cat.ID,
			Name:      cat.Name,
			Type:      cat.Type,
			Budget:    cat.Budget,
			Color:     cat.Color,
			CreatedAt: cat.CreatedAt,
		})
	}

	return output, nil
}
