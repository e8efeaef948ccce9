// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// SeedCategoriesUseCase inserts the default category set on first start.
// Categories are static after seeding; there is no category CRUD.
type SeedCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute seeds the default categories when the store is empty.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) error {
	if err := uc.categoryRepo.Seed(ctx, entity.DefaultCategories()); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}
