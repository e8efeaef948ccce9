// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryType represents the budget classification of a category.
type CategoryType string

const (
	CategoryTypeFixed    CategoryType = "fixed"
	CategoryTypeVariable CategoryType = "variable"
)

// Category represents a named budget bucket. Categories are seeded at
// startup and are static thereafter.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      CategoryType
	Budget    decimal.Decimal
	Color     string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string, categoryType CategoryType, budget decimal.Decimal, color string) *Category {
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		Budget:    budget,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
}

// DefaultCategories returns the fixed category set seeded on first start.
func DefaultCategories() []*Category {
	return []*Category{
		NewCategory("Alimentación", CategoryTypeVariable, decimal.NewFromInt(500), "#ef4444"),
		NewCategory("Vivienda", CategoryTypeFixed, decimal.NewFromInt(1200), "#3b82f6"),
		NewCategory("Transporte", CategoryTypeVariable, decimal.NewFromInt(200), "#f59e0b"),
		NewCategory("Entretenimiento", CategoryTypeVariable, decimal.NewFromInt(150), "#8b5cf6"),
		NewCategory("Salud", CategoryTypeVariable, decimal.NewFromInt(100), "#10b981"),
		NewCategory("Ingresos Trading", CategoryTypeVariable, decimal.Zero, "#14b8a6"),
		NewCategory("Gastos de Empresa", CategoryTypeVariable, decimal.NewFromInt(2000), "#6366f1"),
		NewCategory("Ingresos Laborales", CategoryTypeFixed, decimal.Zero, "#10b981"),
	}
}
