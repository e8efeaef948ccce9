// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Investment domain errors.
var (
	// ErrInvestmentNotFound is returned when an investment is not found in the system.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrInvalidInvestmentType is returned when the investment type is not in the accepted set.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrEmptyAssetName is returned when the asset name is empty.
	ErrEmptyAssetName = errors.New("asset name cannot be empty")
)

// InvestmentErrorCode defines error codes for investment errors.
type InvestmentErrorCode string

const (
	ErrCodeInvestmentNotFound    InvestmentErrorCode = "INV-010001"
	ErrCodeInvalidInvestmentType InvestmentErrorCode = "INV-010002"
	ErrCodeEmptyAssetName        InvestmentErrorCode = "INV-010003"
)

// InvestmentError represents an investment error with code and message.
type InvestmentError struct {
	Code    InvestmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvestmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InvestmentError) Unwrap() error {
	return e.Err
}

// NewInvestmentError creates a new InvestmentError with the given code and message.
func NewInvestmentError(code InvestmentErrorCode, message string, err error) *InvestmentError {
	return &InvestmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
