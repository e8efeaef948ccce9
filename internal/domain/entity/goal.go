// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings target with current progress and a suggested
// monthly contribution. CurrentAmount is allowed to exceed TargetAmount;
// progress is clamped at display time only.
type Goal struct {
	ID                  uuid.UUID
	Title               string
	TargetAmount        decimal.Decimal
	CurrentAmount       decimal.Decimal
	Deadline            time.Time
	MonthlyContribution decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	title string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	deadline time.Time,
	monthlyContribution decimal.Decimal,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:                  uuid.New(),
		Title:               title,
		TargetAmount:        targetAmount,
		CurrentAmount:       currentAmount,
		Deadline:            deadline,
		MonthlyContribution: monthlyContribution,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// Progress returns the completion percentage clamped to [0, 100].
// The underlying amounts are never clamped; a goal past its target keeps its
// real CurrentAmount and simply reports 100 here.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.IsZero() {
		return 0
	}
	pct, _ := g.CurrentAmount.Mul(decimal.NewFromInt(100)).Div(g.TargetAmount).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
