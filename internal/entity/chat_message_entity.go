package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	SessionId string
	UserId    string
	Role      string // "user" or "assistant"
	Content   string
	CreatedAt time.Time
}
