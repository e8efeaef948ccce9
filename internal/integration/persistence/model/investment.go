// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AssetName          string          `gorm:"type:varchar(255);not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type               string          `gorm:"type:varchar(20);not null;index"`
	Date               time.Time       `gorm:"type:date;not null;index"`
	ExpectedReturnRate decimal.Decimal `gorm:"type:decimal(8,4);not null"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:                 m.ID,
		AssetName:          m.AssetName,
		Amount:             m.Amount,
		Type:               entity.InvestmentType(m.Type),
		Date:               m.Date,
		ExpectedReturnRate: m.ExpectedReturnRate,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                 investment.ID,
		AssetName:          investment.AssetName,
		Amount:             investment.Amount,
		Type:               string(investment.Type),
		Date:               investment.Date,
		ExpectedReturnRate: investment.ExpectedReturnRate,
		CreatedAt:          investment.CreatedAt,
		UpdatedAt:          investment.UpdatedAt,
	}
}
