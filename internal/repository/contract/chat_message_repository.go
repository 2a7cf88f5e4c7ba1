package contract

import (
	"context"

	"campus-assistant-be/internal/entity"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	// FindBySessionId returns messages in chronological order.
	FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*entity.ChatMessage, error)
}
