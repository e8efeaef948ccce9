package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

func TestMatchCategory(t *testing.T) {
	food := entity.NewCategory("Alimentación", entity.CategoryTypeVariable, decimal.NewFromInt(500), "#ef4444")
	transport := entity.NewCategory("Transporte", entity.CategoryTypeVariable, decimal.NewFromInt(200), "#f59e0b")
	categories := []*entity.Category{food, transport}

	selected := uuid.New()

	t.Run("exact match ignoring case", func(t *testing.T) {
		if got := matchCategory(categories, "alimentación", selected); got != food.ID {
			t.Errorf("expected food category, got %s", got)
		}
	})

	t.Run("category name containing the extracted name", func(t *testing.T) {
		if got := matchCategory(categories, "aliment", selected); got != food.ID {
			t.Errorf("expected food category, got %s", got)
		}
	})

	t.Run("extracted name containing the category name", func(t *testing.T) {
		if got := matchCategory(categories, "Comida y Alimentación", selected); got != food.ID {
			t.Errorf("expected food category, got %s", got)
		}
	})

	t.Run("exact match wins over substring match", func(t *testing.T) {
		transportes := entity.NewCategory("Transportes", entity.CategoryTypeVariable, decimal.Zero, "#000000")
		withBoth := append([]*entity.Category{transportes}, categories...)

		if got := matchCategory(withBoth, "Transporte", selected); got != transport.ID {
			t.Errorf("expected the exact match, got %s", got)
		}
	})

	t.Run("no match keeps the selected id", func(t *testing.T) {
		if got := matchCategory(categories, "Mascotas", selected); got != selected {
			t.Errorf("expected selected id retained, got %s", got)
		}
	})

	t.Run("empty name keeps the selected id", func(t *testing.T) {
		if got := matchCategory(categories, "", selected); got != selected {
			t.Errorf("expected selected id retained, got %s", got)
		}
	})
}
