package dto

import "github.com/google/uuid"

type IngestDocumentRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=255"`
	Content      string `json:"content" validate:"required,min=1"`
	DocumentType string `json:"document_type,omitempty" validate:"omitempty,oneof=regulation procedure calendar faq announcement"`
	Faculty      string `json:"faculty,omitempty"`
	AcademicYear string `json:"academic_year,omitempty"`
}

type IngestDocumentResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Status     string    `json:"status"`
}

type DocumentStatsResponse struct {
	ChunkCount int64 `json:"chunk_count"`
}

// IngestDocumentMessage is the payload published on the ingest topic.
// The indexer consumer splits, embeds and stores the document.
type IngestDocumentMessage struct {
	DocumentId   uuid.UUID `json:"document_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	DocumentType string    `json:"document_type,omitempty"`
	Faculty      string    `json:"faculty,omitempty"`
	AcademicYear string    `json:"academic_year,omitempty"`
}
