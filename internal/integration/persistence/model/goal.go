// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title               string          `gorm:"type:varchar(255);not null"`
	TargetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deadline            time.Time       `gorm:"type:date;not null;index"`
	MonthlyContribution decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:                  m.ID,
		Title:               m.Title,
		TargetAmount:        m.TargetAmount,
		CurrentAmount:       m.CurrentAmount,
		Deadline:            m.Deadline,
		MonthlyContribution: m.MonthlyContribution,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:                  goal.ID,
		Title:               goal.Title,
		TargetAmount:        goal.TargetAmount,
		CurrentAmount:       goal.CurrentAmount,
		Deadline:            goal.Deadline,
		MonthlyContribution: goal.MonthlyContribution,
		CreatedAt:           goal.CreatedAt,
		UpdatedAt:           goal.UpdatedAt,
	}
}
