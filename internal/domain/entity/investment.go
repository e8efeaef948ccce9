// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestmentType represents the asset class of an investment.
type InvestmentType string

const (
	InvestmentTypeStock      InvestmentType = "Stock"
	InvestmentTypeCrypto     InvestmentType = "Crypto"
	InvestmentTypeCash       InvestmentType = "Cash"
	InvestmentTypeRealEstate InvestmentType = "RealEstate"
)

// ValidInvestmentTypes lists every accepted investment type.
var ValidInvestmentTypes = []InvestmentType{
	InvestmentTypeStock,
	InvestmentTypeCrypto,
	InvestmentTypeCash,
	InvestmentTypeRealEstate,
}

// Investment represents a recorded holding with an expected return rate.
// It is a bookkeeping entry, not a live market position.
type Investment struct {
	ID                 uuid.UUID
	AssetName          string
	Amount             decimal.Decimal
	Type               InvestmentType
	Date               time.Time
	ExpectedReturnRate decimal.Decimal // Percentage, e.g. 8 for 8%
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewInvestment creates a new Investment entity.
func NewInvestment(
	assetName string,
	amount decimal.Decimal,
	investmentType InvestmentType,
	date time.Time,
	expectedReturnRate decimal.Decimal,
) *Investment {
	now := time.Now().UTC()

	return &Investment{
		ID:                 uuid.New(),
		AssetName:          assetName,
		Amount:             amount,
		Type:               investmentType,
		Date:               date,
		ExpectedReturnRate: expectedReturnRate,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
