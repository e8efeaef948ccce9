// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type          string          `gorm:"type:varchar(10);not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;index"`
	Date          time.Time       `gorm:"type:date;not null;index"`
	Note          string          `gorm:"type:text"`
	Merchant      string          `gorm:"type:varchar(255)"`
	PaymentMethod string          `gorm:"type:varchar(30);not null"`
	CreatedAt     time.Time       `gorm:"not null"`

	// Line items are owned by the transaction and removed with it.
	Items []TransactionItemModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`

	// Category is resolved manually (the id may be orphaned, so no FK).
	Category *CategoryModel `gorm:"-"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionItemModel represents the transaction_items table in the database.
type TransactionItemModel struct {
	ID            uint            `gorm:"primaryKey;autoIncrement"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for the TransactionItemModel.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	t := &entity.Transaction{
		ID:            m.ID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		CategoryID:    m.CategoryID,
		Date:          m.Date,
		Note:          m.Note,
		Merchant:      m.Merchant,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		CreatedAt:     m.CreatedAt,
	}

	for _, item := range m.Items {
		t.Items = append(t.Items, entity.TransactionItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}

	return t
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:            transaction.ID,
		Type:          string(transaction.Type),
		Amount:        transaction.Amount,
		CategoryID:    transaction.CategoryID,
		Date:          transaction.Date,
		Note:          transaction.Note,
		Merchant:      transaction.Merchant,
		PaymentMethod: string(transaction.PaymentMethod),
		CreatedAt:     transaction.CreatedAt,
	}

	for i, item := range transaction.Items {
		m.Items = append(m.Items, TransactionItemModel{
			TransactionID: transaction.ID,
			Position:      i,
			Description:   item.Description,
			Amount:        item.Amount,
		})
	}

	return m
}
