// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrEmptyGoalTitle is returned when the goal title is empty.
	ErrEmptyGoalTitle = errors.New("goal title cannot be empty")
)

// GoalErrorCode defines error codes for goal errors.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound   GoalErrorCode = "GOL-010001"
	ErrCodeEmptyGoalTitle GoalErrorCode = "GOL-010002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
