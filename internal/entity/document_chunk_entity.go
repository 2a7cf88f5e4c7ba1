package entity

import (
	"time"

	"github.com/google/uuid"
)

// DocumentChunk is a bounded excerpt of a source document together with
// its embedding. Chunks are immutable after ingestion except for
// re-embedding on model change.
type DocumentChunk struct {
	Id            uuid.UUID
	DocumentId    uuid.UUID
	DocumentTitle string
	Content       string
	ChunkIndex    int
	Locator       string // page/section reference inside the parent document
	DocumentType  string
	Faculty       string
	AcademicYear  string
	Embedding     []float32
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
