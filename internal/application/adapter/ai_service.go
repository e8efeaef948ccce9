// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// DocumentExtractionRequest represents a request to extract a transaction
// from a financial document (receipt image or PDF).
type DocumentExtractionRequest struct {
	// Data is the base64-encoded document payload, without the data-URL prefix.
	Data string
	// MediaType is the payload MIME type (image/jpeg or application/pdf).
	MediaType string
	// CategoryNames is the closed set of category names the model must choose
	// from. When empty, the service falls back to a fixed default list.
	CategoryNames []string
}

// ExtractedItem is a single line item returned by the extraction service.
type ExtractedItem struct {
	Description string
	Amount      decimal.Decimal
}

// DocumentExtractionResult represents the structured data extracted from a document.
type DocumentExtractionResult struct {
	Merchant     string
	Amount       decimal.Decimal
	Date         string // ISO 8601 (YYYY-MM-DD); may be empty when illegible
	CategoryName string // One of the supplied category names
	Type         string // "income" or "expense"
	Items        []ExtractedItem
}

// DocumentExtractionService defines the interface for AI document extraction.
type DocumentExtractionService interface {
	// ExtractTransaction sends the document to the model and returns the
	// structured extraction result.
	ExtractTransaction(ctx context.Context, request *DocumentExtractionRequest) (*DocumentExtractionResult, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}

// ChatTurn is a role-tagged message in the assistant conversation history.
type ChatTurn struct {
	Role string // "user" or "model"
	Text string
}

// AssistantContext is the financial snapshot embedded into the assistant's
// system instruction. Transactions are bounded to the most recent 50; the
// other collections are complete.
type AssistantContext struct {
	Transactions []AssistantTransaction
	Categories   []AssistantCategory
	Goals        []AssistantGoal
	Investments  []AssistantInvestment
}

// AssistantTransaction is the serialized form of a transaction for the model.
type AssistantTransaction struct {
	Type     string `json:"type"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     string `json:"date"`
	Note     string `json:"note,omitempty"`
	Merchant string `json:"merchant,omitempty"`
}

// AssistantCategory is the serialized form of a category for the model.
type AssistantCategory struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Budget string `json:"budget"`
}

// AssistantGoal is the serialized form of a goal for the model.
type AssistantGoal struct {
	Title               string `json:"title"`
	TargetAmount        string `json:"targetAmount"`
	CurrentAmount       string `json:"currentAmount"`
	Deadline            string `json:"deadline"`
	MonthlyContribution string `json:"monthlyContribution"`
}

// AssistantInvestment is the serialized form of an investment for the model.
type AssistantInvestment struct {
	AssetName          string `json:"assetName"`
	Amount             string `json:"amount"`
	Type               string `json:"type"`
	Date               string `json:"date"`
	ExpectedReturnRate string `json:"expectedReturnRate"`
}

// AssistantService defines the interface for the conversational assistant.
type AssistantService interface {
	// Chat replays the prior history, sends the new user message seeded with
	// the financial context, and returns the model's free-text reply.
	Chat(ctx context.Context, history []ChatTurn, message string, context *AssistantContext) (string, error)

	// IsAvailable checks if the AI service is available and properly configured.
	IsAvailable() bool
}
