// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type      string          `gorm:"type:varchar(10);not null"`
	Budget    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Color     string          `gorm:"type:varchar(7);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Type:      entity.CategoryType(m.Type),
		Budget:    m.Budget,
		Color:     m.Color,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Type:      string(category.Type),
		Budget:    category.Budget,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}
