// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeTransactionAmount is returned when the transaction amount is negative.
	ErrNegativeTransactionAmount = errors.New("transaction amount must not be negative")

	// ErrInvalidPaymentMethod is returned when the payment method is not in the accepted set.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrNoteTooLong is returned when the transaction note exceeds the maximum length.
	ErrNoteTooLong = errors.New("note too long")

	// ErrMerchantTooLong is returned when the merchant name exceeds the maximum length.
	ErrMerchantTooLong = errors.New("merchant too long")

	// ErrTransactionNotFound is returned when a transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidPaymentMethod      TransactionErrorCode = "TXN-010003"
	ErrCodeNoteTooLong               TransactionErrorCode = "TXN-010004"
	ErrCodeMerchantTooLong           TransactionErrorCode = "TXN-010005"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
