// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sync"

	"github.com/finanza-tracker/backend/internal/application/adapter"
	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// chatHistoryRepository keeps the assistant thread in memory. The thread is
// session-scoped and is not expected to survive a restart.
type chatHistoryRepository struct {
	mu       sync.RWMutex
	messages []*entity.ChatMessage
}

// NewChatHistoryRepository creates a new in-memory chat history repository.
func NewChatHistoryRepository() adapter.ChatHistoryRepository {
	return &chatHistoryRepository{}
}

// Append adds a message to the end of the thread.
func (r *chatHistoryRepository) Append(_ context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

// All returns a copy of the thread in arrival order.
func (r *chatHistoryRepository) All(_ context.Context) ([]*entity.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	messages := make([]*entity.ChatMessage, len(r.messages))
	copy(messages, r.messages)
	return messages, nil
}
