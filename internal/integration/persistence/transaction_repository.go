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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction and its line items in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindAll retrieves all transactions ordered by date descending.
func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	transactionModels, err := r.findOrdered(ctx, 0)
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// FindAllWithCategory retrieves all transactions with their categories,
// ordered by date descending. Category ids that no longer resolve yield a
// nil Category rather than an error.
func (r *transactionRepository) FindAllWithCategory(ctx context.Context) ([]*entity.TransactionWithCategory, error) {
	transactionModels, err := r.findOrdered(ctx, 0)
	if err != nil {
		return nil, err
	}

	var categoryModels []model.CategoryModel
	if err := r.db.WithContext(ctx).Find(&categoryModels).Error; err != nil {
		return nil, err
	}
	categoriesByID := make(map[uuid.UUID]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categoriesByID[categoryModels[i].ID] = categoryModels[i].ToEntity()
	}

	transactions := make([]*entity.TransactionWithCategory, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = &entity.TransactionWithCategory{
			Transaction: tm.ToEntity(),
			Category:    categoriesByID[tm.CategoryID],
		}
	}
	return transactions, nil
}

// FindRecent retrieves the most recent transactions up to limit.
func (r *transactionRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Transaction, error) {
	transactionModels, err := r.findOrdered(ctx, limit)
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Delete removes a transaction and its line items. A missing id is a no-op.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ?", id).Delete(&model.TransactionItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.TransactionModel{}).Error
	})
}

// findOrdered fetches transactions newest-first with their line items.
// A limit of 0 fetches everything.
func (r *transactionRepository) findOrdered(ctx context.Context, limit int) ([]model.TransactionModel, error) {
	query := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("date DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return transactionModels, nil
}
