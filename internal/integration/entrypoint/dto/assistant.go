// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finanza-tracker/backend/internal/application/usecase/assistant"
)

// SendMessageRequest represents the request body for a chat message.
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatMessageResponse represents a single chat message in API responses.
type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistoryResponse represents the response for listing the chat thread.
type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToChatMessageResponse converts a MessageOutput to a ChatMessageResponse DTO.
func ToChatMessageResponse(output *assistant.MessageOutput) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        output.ID.String(),
		Role:      string(output.Role),
		Text:      output.Text,
		Timestamp: output.Timestamp,
	}
}

// ToChatHistoryResponse converts a list of MessageOutput to ChatHistoryResponse.
func ToChatHistoryResponse(outputs []*assistant.MessageOutput) ChatHistoryResponse {
	messages := make([]ChatMessageResponse, len(outputs))
	for i, output := range outputs {
		messages[i] = ToChatMessageResponse(output)
	}
	return ChatHistoryResponse{
		Messages: messages,
	}
}
