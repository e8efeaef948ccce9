// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Assistant domain errors.
//
// Failures while talking to the remote model are deliberately NOT errors at
// the use-case boundary: the assistant answers with a fixed fallback message
// instead, so the conversation thread is never corrupted. Only input
// validation and missing configuration surface as errors.
var (
	// ErrEmptyChatMessage is returned when the user submits an empty message.
	ErrEmptyChatMessage = errors.New("message cannot be empty")
)

// AssistantErrorCode defines error codes for assistant errors.
type AssistantErrorCode string

const (
	ErrCodeEmptyChatMessage AssistantErrorCode = "AST-010001"
)
