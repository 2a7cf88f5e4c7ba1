package memory

import (
	"context"
	"sync"

	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type ChatMessageRepository struct {
	mu       sync.RWMutex
	messages []*entity.ChatMessage
}

var _ contract.ChatMessageRepository = &ChatMessageRepository{}

func NewChatMessageRepository() *ChatMessageRepository {
	return &ChatMessageRepository{}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.Id == uuid.Nil {
		message.Id = uuid.New()
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *ChatMessageRepository) FindBySessionId(ctx context.Context, sessionId string, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.ChatMessage
	for _, m := range r.messages {
		if m.SessionId == sessionId {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
