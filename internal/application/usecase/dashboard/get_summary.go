// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// FallbackCategoryName is the bucket used for expense transactions whose
// category id does not resolve to a known category.
const FallbackCategoryName = "Otros"

// CategoryExpense is one entry of the expense-by-category breakdown.
type CategoryExpense struct {
	CategoryName string
	Color        string
	Amount       decimal.Decimal
	Budget       decimal.Decimal
	Percentage   float64
}

// GetSummaryOutput represents the aggregated dashboard figures.
// Balance is signed: income minus expense, possibly negative.
type GetSummaryOutput struct {
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	Balance           decimal.Decimal
	ExpenseByCategory []CategoryExpense
}

// GetSummaryUseCase derives dashboard totals from the transaction collection.
//
// The aggregation is a single pass over every stored transaction and is
// recomputed from scratch on every call; there is deliberately no cached or
// incremental state. No date window is applied either: the source system
// labelled this view "this month" while aggregating everything, and that
// behavior is preserved pending a product decision.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute computes the dashboard summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categoriesByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoriesByID[cat.ID] = cat
	}

	output := &GetSummaryOutput{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Balance:      decimal.Zero,
	}

	expenseByName := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			output.TotalIncome = output.TotalIncome.Add(t.Amount)
			output.Balance = output.Balance.Add(t.Amount)
		case entity.TransactionTypeExpense:
			output.TotalExpense = output.TotalExpense.Add(t.Amount)
			output.Balance = output.Balance.Sub(t.Amount)

			name := FallbackCategoryName
			if cat, ok := categoriesByID[t.CategoryID]; ok {
				name = cat.Name
			}
			expenseByName[name] = expenseByName[name].Add(t.Amount)
		}
	}

	output.ExpenseByCategory = uc.buildBreakdown(expenseByName, categories, output.TotalExpense)

	return output, nil
}

// buildBreakdown converts the per-name expense map into a sorted slice,
// attaching category color and budget where the name resolves to a category.
func (uc *GetSummaryUseCase) buildBreakdown(
	expenseByName map[string]decimal.Decimal,
	categories []*entity.Category,
	totalExpense decimal.Decimal,
) []CategoryExpense {
	categoriesByName := make(map[string]*entity.Category, len(categories))
	for _, cat := range categories {
		categoriesByName[cat.Name] = cat
	}

	breakdown := make([]CategoryExpense, 0, len(expenseByName))
	for name, amount := range expenseByName {
		item := CategoryExpense{
			CategoryName: name,
			Color:        "#6b7280",
			Amount:       amount,
			Budget:       decimal.Zero,
		}

		if cat, ok := categoriesByName[name]; ok {
			item.Color = cat.Color
			item.Budget = cat.Budget
		}

		if !totalExpense.IsZero() {
			pct := amount.Mul(decimal.NewFromInt(100)).Div(totalExpense)
			item.Percentage, _ = pct.Round(2).Float64()
		}

		breakdown = append(breakdown, item)
	}

	// Largest bucket first; ties broken by name for stable output.
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].CategoryName < breakdown[j].CategoryName
		}
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}
