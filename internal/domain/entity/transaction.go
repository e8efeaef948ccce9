// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// PaymentMethod represents how a transaction was paid.
// The set mirrors the payment options offered by the entry form.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "Efectivo"
	PaymentMethodCreditCard    PaymentMethod = "Tarjeta Crédito"
	PaymentMethodDebitCard     PaymentMethod = "Tarjeta Débito"
	PaymentMethodTransferPesos PaymentMethod = "Transferencia PESOS"
	PaymentMethodTransferUSD   PaymentMethod = "Transferencia USD"
	PaymentMethodTransferUSDT  PaymentMethod = "Transferencia USDT"
	PaymentMethodCryptoWallet  PaymentMethod = "Wallet Cripto"
)

// ValidPaymentMethods lists every accepted payment method.
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodTransferPesos,
	PaymentMethodTransferUSD,
	PaymentMethodTransferUSDT,
	PaymentMethodCryptoWallet,
}

// TransactionItem is a single line item nested inside a transaction, as
// extracted from a receipt. The sum of item amounts is advisory and is not
// reconciled against the parent transaction amount.
type TransactionItem struct {
	Description string
	Amount      decimal.Decimal
}

// Transaction represents a single recorded income or expense event.
// Transactions are created and deleted but never updated in place. The
// CategoryID may reference a category that no longer exists; orphaned ids are
// tolerated and surface in the "Otros" bucket at aggregation time.
type Transaction struct {
	ID            uuid.UUID
	Type          TransactionType
	Amount        decimal.Decimal // Always >= 0; sign is carried by Type
	CategoryID    uuid.UUID
	Date          time.Time
	Note          string
	Merchant      string
	PaymentMethod PaymentMethod
	Items         []TransactionItem
	CreatedAt     time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	transactionType TransactionType,
	amount decimal.Decimal,
	categoryID uuid.UUID,
	date time.Time,
	note string,
	merchant string,
	paymentMethod PaymentMethod,
	items []TransactionItem,
) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		Type:          transactionType,
		Amount:        amount,
		CategoryID:    categoryID,
		Date:          date,
		Note:          note,
		Merchant:      merchant,
		PaymentMethod: paymentMethod,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}
}

// TransactionWithCategory represents a transaction with its associated
// category. Category is nil when the transaction's category id is orphaned.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
