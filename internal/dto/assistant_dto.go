package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatQueryRequest struct {
	UserId    string `json:"user_id" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
	// Metadata narrows document search; recognized keys are
	// document_type, faculty and academic_year.
	Metadata map[string]string `json:"metadata,omitempty"`
}

type SourceDTO struct {
	DocumentId    uuid.UUID `json:"document_id"`
	DocumentTitle string    `json:"document_title"`
	Excerpt       string    `json:"excerpt,omitempty"`
	Locator       string    `json:"locator,omitempty"`
	Similarity    float64   `json:"similarity"`
}

type ChatQueryResponse struct {
	SessionId        string      `json:"session_id"`
	Response         string      `json:"response"`
	QueryType        string      `json:"query_type"`
	Confidence       float64     `json:"confidence"`
	Sources          []SourceDTO `json:"sources,omitempty"`
	SuggestedActions []string    `json:"suggested_actions,omitempty"`
	Trace            []string    `json:"trace,omitempty"`
	Degraded         bool        `json:"degraded"`
}

type ChatHistoryMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	QueryType string    `json:"query_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatHistoryResponse struct {
	SessionId string               `json:"session_id"`
	Messages  []ChatHistoryMessage `json:"messages"`
}

type ComplaintResponse struct {
	Id        uuid.UUID `json:"id"`
	ShortId   string    `json:"short_id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
