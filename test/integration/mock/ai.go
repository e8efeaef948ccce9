// Package mock provides test doubles for external dependencies.
package mock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// AIService is a configurable stand-in for the Gemini adapter. It implements
// both adapter.DocumentExtractionService and adapter.AssistantService.
//
// By default the service reports itself as not configured, matching a server
// started without an API key. Scenarios flip the fields to simulate a
// configured, failing, or scripted service.
type AIService struct {
	Available bool
	Failing   bool

	// Reply is returned by Chat when the service is available and healthy.
	Reply string

	// Extraction is returned by ExtractTransaction when configured.
	Extraction *adapter.DocumentExtractionResult
}

// NewAIService creates a stub AI service in the not-configured state.
func NewAIService() *AIService {
	return &AIService{}
}

// IsAvailable reports whether the stub simulates a configured service.
func (s *AIService) IsAvailable() bool {
	return s.Available
}

// ExtractTransaction returns the scripted extraction result.
func (s *AIService) ExtractTransaction(_ context.Context, _ *adapter.DocumentExtractionRequest) (*adapter.DocumentExtractionResult, error) {
	if s.Failing {
		return nil, errors.New("simulated extraction failure")
	}
	if s.Extraction != nil {
		return s.Extraction, nil
	}
	return &adapter.DocumentExtractionResult{
		Merchant:     "Supermercado Central",
		Amount:       decimal.NewFromFloat(150.75),
		Date:         "2026-01-15",
		CategoryName: "Alimentación",
		Type:         "expense",
		Items: []adapter.ExtractedItem{
			{Description: "Compra general", Amount: decimal.NewFromFloat(150.75)},
		},
	}, nil
}

// Chat returns the scripted reply.
func (s *AIService) Chat(_ context.Context, _ []adapter.ChatTurn, _ string, _ *adapter.AssistantContext) (string, error) {
	if s.Failing {
		return "", errors.New("simulated chat failure")
	}
	return s.Reply, nil
}
