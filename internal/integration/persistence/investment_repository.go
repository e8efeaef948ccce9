// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
	"github.com/finanza-tracker/backend/internal/integration/persistence/model"
)

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Save inserts the investment or replaces the stored row with the same id.
func (r *investmentRepository) Save(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Save(investmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindAll retrieves all investments ordered by date descending.
func (r *investmentRepository) FindAll(ctx context.Context) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).Order("date DESC, created_at DESC").Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i, im := range investmentModels {
		investments[i] = im.ToEntity()
	}
	return investments, nil
}

// Delete removes an investment by id. A missing id is a no-op.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.InvestmentModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
