// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finanza-tracker/backend/internal/domain/entity"
)

// ChatHistoryRepository defines the interface for the assistant conversation
// thread. The thread is append-only and ordered by arrival.
type ChatHistoryRepository interface {
	// Append adds a message to the end of the thread.
	Append(ctx context.Context, message *entity.ChatMessage) error

	// All returns the full thread in arrival order.
	All(ctx context.Context) ([]*entity.ChatMessage, error)
}
