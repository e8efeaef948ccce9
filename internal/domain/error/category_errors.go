// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryErrorCode defines error codes for category errors.
type CategoryErrorCode string

const (
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-010001"
)
