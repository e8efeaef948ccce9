// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is a single message in the assistant conversation.
// Messages are append-only: once recorded they are never mutated or deleted.
type ChatMessage struct {
	ID        uuid.UUID
	Role      ChatRole
	Text      string
	Timestamp time.Time
}

// NewChatMessage creates a new ChatMessage entity.
func NewChatMessage(role ChatRole, text string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}
}
