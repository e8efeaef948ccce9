// Package error defines domain-specific errors for the Finanza Tracker application.
package error

import "errors"

// Document processing domain errors.
var (
	// ErrUnsupportedDocumentFormat is returned when the uploaded file is neither
	// a supported image nor a PDF. Raised before any network call happens.
	ErrUnsupportedDocumentFormat = errors.New("unsupported document format, use PDF, JPG or PNG")

	// ErrDocumentDecodeFailed is returned when an image cannot be decoded.
	ErrDocumentDecodeFailed = errors.New("failed to decode document")

	// ErrDocumentUnreadable is returned when the extraction service fails or
	// returns an unparseable response.
	ErrDocumentUnreadable = errors.New("document could not be read")

	// ErrAIServiceNotConfigured is returned when an AI-dependent feature is
	// invoked without an API key configured.
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
)

// DocumentErrorCode defines error codes for document processing errors.
type DocumentErrorCode string

const (
	ErrCodeUnsupportedDocumentFormat DocumentErrorCode = "DOC-010001"
	ErrCodeDocumentDecodeFailed      DocumentErrorCode = "DOC-010002"
	ErrCodeDocumentUnreadable        DocumentErrorCode = "DOC-020001"
	ErrCodeAIServiceNotConfigured    DocumentErrorCode = "DOC-030001"
)

// DocumentError represents a document processing error with code and message.
type DocumentError struct {
	Code    DocumentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DocumentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DocumentError) Unwrap() error {
	return e.Err
}

// NewDocumentError creates a new DocumentError with the given code and message.
func NewDocumentError(code DocumentErrorCode, message string, err error) *DocumentError {
	return &DocumentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
