package store

import "time"

// Turn is one prior exchange message kept for conversational context.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session is the active conversation state cached in memory between turns.
type Session struct {
	ID     string `json:"id"` // chat session id
	UserID string `json:"user_id"`

	// Recent history, chronological, bounded by maxTurns in the repository
	History []Turn `json:"history"`

	// Metadata for the last interaction
	LastQueryType string    `json:"last_query_type"`
	LastQuery     string    `json:"last_query"`
	UpdatedAt     time.Time `json:"updated_at"`
}
