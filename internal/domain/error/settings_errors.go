// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrInvalidCurrency is returned when the currency code is not in the supported set.
	ErrInvalidCurrency = errors.New("invalid currency code")
)

// SettingsErrorCode defines error codes for settings errors.
type SettingsErrorCode string

const (
	ErrCodeInvalidCurrency SettingsErrorCode = "SET-010001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
