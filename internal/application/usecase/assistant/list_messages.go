// Package assistant contains the conversational assistant use cases.
package assistant

import (
	"context"
	"fmt"

	"github.com/finanza-tracker/backend/internal/application/adapter"
)

// ListMessagesOutput represents the output of listing the conversation thread.
type ListMessagesOutput struct {
	Messages []*MessageOutput
}

// ListMessagesUseCase handles reading the conversation thread in arrival order.
type ListMessagesUseCase struct {
	chatRepo adapter.ChatHistoryRepository
}

// NewListMessagesUseCase creates a new ListMessagesUseCase instance.
func NewListMessagesUseCase(chatRepo adapter.ChatHistoryRepository) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		chatRepo: chatRepo,
	}
}

// Execute retrieves the full conversation thread.
func (uc *ListMessagesUseCase) Execute(ctx context.Context) (*ListMessagesOutput, error) {
	messages, err := uc.chatRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	output := &ListMessagesOutput{
		Messages: make([]*MessageOutput, 0, len(messages)),
	}
	for _, m := range messages {
		output.Messages = append(output.Messages, &MessageOutput{
			ID:        m.ID,
			Role:      m.Role,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}

	return output, nil
}
